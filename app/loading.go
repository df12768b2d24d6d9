package app

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/voxfolio"
)

var loadingFill = color.RGBA{0x91, 0xbd, 0xff, 0xff}

// loadingScreen covers the window until delay milliseconds of scene time
// have passed.
type loadingScreen struct {
	delay   float64
	visible bool
	label   *voxfolio.TextBlock
}

func newLoadingScreen(font *voxfolio.TTFFont, delayMS int) *loadingScreen {
	l := &loadingScreen{
		delay:   float64(delayMS),
		visible: delayMS > 0,
		label:   voxfolio.NewTextBlock("Loading...", font, 0),
	}
	l.label.Color = voxfolio.RGB(0x1e1e1e)
	return l
}

// update hides the screen once nowMS reaches the delay.
func (l *loadingScreen) update(nowMS float64) {
	if l.visible && nowMS >= l.delay {
		l.visible = false
		slog.Debug("loading screen hidden", "component", "app", "ms", nowMS)
	}
}

func (l *loadingScreen) draw(screen *ebiten.Image) {
	if !l.visible {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), loadingFill, false)
	w, h := l.label.Size()
	l.label.Draw(screen, (float64(b.Dx())-w)/2, (float64(b.Dy())-h)/2)
}
