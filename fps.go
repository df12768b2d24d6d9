package voxfolio

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget draws the current FPS, TPS and last-frame face counts in the
// top-left corner. The text is refreshed every ~0.5 seconds.
type FPSWidget struct {
	img        *ebiten.Image
	lastUpdate float64
	stats      debugStats
}

// NewFPSWidget creates a widget with its own backing image.
func NewFPSWidget() *FPSWidget {
	// 140x48 is enough for three debug lines.
	return &FPSWidget{img: ebiten.NewImage(140, 48), lastUpdate: 1}
}

// Update advances the refresh timer by dt seconds and re-renders the text
// when it expires.
func (w *FPSWidget) Update(s *Scene, dt float64) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0
	if s != nil {
		w.stats = s.lastStats
	}

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFaces: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), w.stats.faceCount))
}

// Draw blits the widget at (x, y).
func (w *FPSWidget) Draw(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(w.img, op)
}
