package voxfolio

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TextAlign controls horizontal alignment of wrapped lines.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextBlock holds overlay text content, formatting, and cached layout state.
// It is drawn in screen space on top of the 3D scene.
type TextBlock struct {
	Content    string
	Font       Font
	Align      TextAlign
	WrapWidth  float64
	Color      Color
	LineHeight float64 // override; 0 = use Font.LineHeight()

	layoutDirty bool
	laidOut     string
	laidWidth   float64
	measuredW   float64
	measuredH   float64
	lines       []textLine
}

// textLine stores one wrapped line and its measured width.
type textLine struct {
	text  string
	width float64
}

// NewTextBlock creates a text block with white text.
func NewTextBlock(content string, font Font, wrapWidth float64) *TextBlock {
	return &TextBlock{
		Content:     content,
		Font:        font,
		WrapWidth:   wrapWidth,
		Color:       ColorWhite,
		layoutDirty: true,
	}
}

// Invalidate forces the next layout call to recompute lines.
func (tb *TextBlock) Invalidate() {
	tb.layoutDirty = true
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

// layout recomputes line breaks if the content, wrap width or font changed.
func (tb *TextBlock) layout() []textLine {
	if !tb.layoutDirty && tb.laidOut == tb.Content && tb.laidWidth == tb.WrapWidth {
		return tb.lines
	}
	tb.layoutDirty = false
	tb.laidOut = tb.Content
	tb.laidWidth = tb.WrapWidth
	tb.lines = tb.lines[:0]
	tb.measuredW, tb.measuredH = 0, 0
	if tb.Font == nil {
		return tb.lines
	}

	for _, para := range strings.Split(tb.Content, "\n") {
		tb.wrapParagraph(para)
	}
	for _, l := range tb.lines {
		tb.measuredW = max(tb.measuredW, l.width)
	}
	tb.measuredH = float64(len(tb.lines)) * tb.lineHeight()
	return tb.lines
}

// wrapParagraph greedily packs words into lines no wider than WrapWidth.
// A single word wider than the wrap width gets a line of its own.
func (tb *TextBlock) wrapParagraph(para string) {
	words := strings.Fields(para)
	if len(words) == 0 {
		tb.lines = append(tb.lines, textLine{})
		return
	}
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if tb.WrapWidth > 0 {
			if width, _ := tb.Font.MeasureString(next); width > tb.WrapWidth {
				tb.pushLine(cur)
				cur = w
				continue
			}
		}
		cur = next
	}
	tb.pushLine(cur)
}

func (tb *TextBlock) pushLine(s string) {
	w, _ := tb.Font.MeasureString(s)
	tb.lines = append(tb.lines, textLine{text: s, width: w})
}

// Lines returns the wrapped lines of the block.
func (tb *TextBlock) Lines() []string {
	lines := tb.layout()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// Size returns the measured width and height of the laid out block.
func (tb *TextBlock) Size() (w, h float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// Draw renders the block with its top-left corner at (x, y). Only TTF fonts
// can be drawn; other fonts are measured but skipped.
func (tb *TextBlock) Draw(dst *ebiten.Image, x, y float64) {
	f, ok := tb.Font.(*TTFFont)
	if !ok {
		return
	}
	lines := tb.layout()
	lh := tb.lineHeight()
	alignW := tb.measuredW
	if tb.WrapWidth > 0 {
		alignW = tb.WrapWidth
	}
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		var offsetX float64
		switch tb.Align {
		case TextAlignCenter:
			offsetX = (alignW - l.width) / 2
		case TextAlignRight:
			offsetX = alignW - l.width
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+offsetX, y+float64(i)*lh)
		op.ColorScale.Scale(float32(tb.Color.R), float32(tb.Color.G), float32(tb.Color.B), float32(tb.Color.A))
		text.Draw(dst, l.text, f.face, op)
	}
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("voxfolio: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// WithSize returns a font sharing this font's source at a different size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	return newTTFFont(f.source, size)
}

// DefaultFont loads the bundled Go Regular face at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
