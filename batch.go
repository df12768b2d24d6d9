package voxfolio

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchFaces caps the quads submitted per DrawTriangles32 call.
const maxBatchFaces = 8192

// whiteImage is a lazily created 3x3 white image. Vertices sample its center
// pixel so linear filtering never picks up a transparent edge.
var whiteImage *ebiten.Image

func ensureWhiteImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// submitFaces converts the sorted face list into vertex batches and draws
// them in painter order.
func (s *Scene) submitFaces(target *ebiten.Image) {
	if len(s.faces) == 0 {
		return
	}
	img := ensureWhiteImage()

	for i := range s.faces {
		s.appendFaceQuad(&s.faces[i])
		if len(s.batchVerts) >= maxBatchFaces*4 {
			s.flushFaceBatch(target, img)
		}
	}
	s.flushFaceBatch(target, img)
}

// appendFaceQuad adds four premultiplied vertices and two triangles.
func (s *Scene) appendFaceQuad(f *faceCommand) {
	a := float32(clamp01(f.color.A))
	r := float32(clamp01(f.color.R)) * a
	g := float32(clamp01(f.color.G)) * a
	b := float32(clamp01(f.color.B)) * a

	base := uint32(len(s.batchVerts))
	for _, p := range f.pts {
		s.batchVerts = append(s.batchVerts, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1.5, SrcY: 1.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	s.batchInds = append(s.batchInds,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
}

// flushFaceBatch submits accumulated vertices as a single DrawTriangles32 call.
func (s *Scene) flushFaceBatch(target, img *ebiten.Image) {
	if len(s.batchVerts) == 0 {
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true

	target.DrawTriangles32(s.batchVerts, s.batchInds, img, &triOp)

	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
}
