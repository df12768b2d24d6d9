package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/content"
)

const (
	panelMaxWidth = 460
	panelMargin   = 20
	panelPadding  = 18
	panelGap      = 8
	bulletIndent  = 16
)

var (
	panelFill    = color.RGBA{0x1e, 0x1e, 0x1e, 0xe0}
	panelBorder  = color.RGBA{0x7f, 0xb2, 0x38, 0xff}
	headingColor = voxfolio.RGB(0xFFD700)
)

type panelBlock struct {
	text *voxfolio.TextBlock
	x, y float64
}

// Panel shows the active section's text on the right side of the window.
// It implements nav.Panel. Bodies taller than the panel scroll with the
// mouse wheel.
type Panel struct {
	fonts   fontSet
	visible bool
	section content.Section

	rect     voxfolio.Rect
	blocks   []panelBlock
	contentH float64
	scroll   float64
}

func newPanel(fonts fontSet) *Panel {
	return &Panel{fonts: fonts}
}

// Show lays out sec and makes the panel visible with the scroll reset.
func (p *Panel) Show(sec content.Section) {
	p.section = sec
	p.visible = true
	p.scroll = 0
	p.build()
}

// Hide makes the panel invisible. Its last section is kept.
func (p *Panel) Hide() {
	p.visible = false
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// Section returns the section on display.
func (p *Panel) Section() (content.Section, bool) {
	return p.section, p.visible
}

// Resize places the panel for a w x h window.
func (p *Panel) Resize(w, h int) {
	width := min(panelMaxWidth, float64(w)*0.45)
	r := voxfolio.Rect{
		X:      float64(w) - width - panelMargin,
		Y:      panelMargin,
		Width:  width,
		Height: max(float64(h)-2*panelMargin, 0),
	}
	if r == p.rect {
		return
	}
	p.rect = r
	if p.section.ID != "" {
		p.build()
	}
}

// Contains reports whether (x, y) is over the visible panel.
func (p *Panel) Contains(x, y float64) bool {
	return p.visible && p.rect.Contains(x, y)
}

// Scroll moves the body by dy pixels, clamped to the overflow.
func (p *Panel) Scroll(dy float64) {
	p.scroll = min(max(p.scroll+dy, 0), p.maxScroll())
}

// Offset returns the current scroll offset in pixels.
func (p *Panel) Offset() float64 { return p.scroll }

func (p *Panel) maxScroll() float64 {
	return max(0, p.contentH-(p.rect.Height-2*panelPadding))
}

func (p *Panel) build() {
	wrap := p.rect.Width - 2*panelPadding
	p.blocks = p.blocks[:0]
	y := 0.0
	add := func(tb *voxfolio.TextBlock, x float64) {
		p.blocks = append(p.blocks, panelBlock{text: tb, x: x, y: y})
		_, h := tb.Size()
		y += h + panelGap
	}

	title := voxfolio.NewTextBlock(p.section.Title, p.fonts.title, wrap)
	title.Color = headingColor
	add(title, 0)

	for _, b := range p.section.Blocks() {
		switch b.Kind {
		case content.BlockHeading:
			tb := voxfolio.NewTextBlock(b.Text, p.fonts.headingFont(b.Level), wrap)
			tb.Color = headingColor
			add(tb, 0)
		case content.BlockListItem:
			add(voxfolio.NewTextBlock("• "+b.Text, p.fonts.body, wrap-bulletIndent), bulletIndent)
		default:
			add(voxfolio.NewTextBlock(b.Text, p.fonts.body, wrap), 0)
		}
	}
	p.contentH = max(0, y-panelGap)
	p.scroll = min(p.scroll, p.maxScroll())
}

// Draw renders the panel when visible.
func (p *Panel) Draw(screen *ebiten.Image) {
	if !p.visible {
		return
	}
	r := p.rect
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), panelFill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, panelBorder, false)

	inner := image.Rect(
		int(r.X+panelPadding), int(r.Y+panelPadding),
		int(r.X+r.Width-panelPadding), int(r.Y+r.Height-panelPadding),
	)
	clip, ok := screen.SubImage(inner).(*ebiten.Image)
	if !ok {
		return
	}
	top := float64(inner.Min.Y) - p.scroll
	for _, b := range p.blocks {
		y := top + b.y
		if _, h := b.text.Size(); y+h < float64(inner.Min.Y) || y > float64(inner.Max.Y) {
			continue
		}
		b.text.Draw(clip, float64(inner.Min.X)+b.x, y)
	}
}
