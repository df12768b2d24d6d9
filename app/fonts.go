package app

import "github.com/phanxgames/voxfolio"

// fontSet holds the faces used by the overlays. All sizes share one parsed
// source.
type fontSet struct {
	body    *voxfolio.TTFFont
	title   *voxfolio.TTFFont
	heading [4]*voxfolio.TTFFont
}

func newFontSet(size float64) (fontSet, error) {
	body, err := voxfolio.DefaultFont(size)
	if err != nil {
		return fontSet{}, err
	}
	fs := fontSet{body: body, title: body.WithSize(size * 1.6)}
	for i := range fs.heading {
		fs.heading[i] = body.WithSize(size * (1.45 - 0.1*float64(i)))
	}
	return fs, nil
}

// headingFont returns the face for an h1..h6 heading. Levels past h4 share
// the smallest heading face.
func (f fontSet) headingFont(level int) *voxfolio.TTFFont {
	i := min(max(level-1, 0), len(f.heading)-1)
	return f.heading[i]
}
