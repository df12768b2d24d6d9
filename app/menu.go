package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/content"
)

const (
	menuMargin  = 16
	menuPadX    = 12
	menuPadY    = 6
	menuSpacing = 4
)

var (
	menuFill  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	menuHover = color.RGBA{0x7f, 0xb2, 0x38, 0xd0}
)

type menuItem struct {
	id    string
	label *voxfolio.TextBlock
	rect  voxfolio.Rect
}

// Menu is the list of section buttons in the top-left corner, in content
// order.
type Menu struct {
	font  *voxfolio.TTFFont
	items []menuItem
	hover int
}

func newMenu(font *voxfolio.TTFFont, sections []content.Section) *Menu {
	m := &Menu{font: font, hover: -1}
	m.rebuild(sections)
	return m
}

// rebuild lays out one button per section.
func (m *Menu) rebuild(sections []content.Section) {
	m.items = m.items[:0]
	width := 0.0
	for _, s := range sections {
		w, _ := m.font.MeasureString(s.Title)
		width = max(width, w)
	}
	h := m.font.LineHeight() + 2*menuPadY
	y := float64(menuMargin)
	for _, s := range sections {
		m.items = append(m.items, menuItem{
			id:    s.ID,
			label: voxfolio.NewTextBlock(s.Title, m.font, 0),
			rect:  voxfolio.Rect{X: menuMargin, Y: y, Width: width + 2*menuPadX, Height: h},
		})
		y += h + menuSpacing
	}
	m.hover = -1
}

// IDs returns the section ids in menu order.
func (m *Menu) IDs() []string {
	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.id
	}
	return ids
}

// ItemAt returns the section id of the button under (x, y).
func (m *Menu) ItemAt(x, y float64) (string, bool) {
	for _, it := range m.items {
		if it.rect.Contains(x, y) {
			return it.id, true
		}
	}
	return "", false
}

// Contains reports whether (x, y) is over any button.
func (m *Menu) Contains(x, y float64) bool {
	_, ok := m.ItemAt(x, y)
	return ok
}

// Hover records the pointer position for highlighting.
func (m *Menu) Hover(x, y float64) {
	m.hover = -1
	for i, it := range m.items {
		if it.rect.Contains(x, y) {
			m.hover = i
			return
		}
	}
}

// Draw renders the buttons.
func (m *Menu) Draw(screen *ebiten.Image) {
	for i, it := range m.items {
		fill := menuFill
		if i == m.hover {
			fill = menuHover
		}
		r := it.rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill, false)
		it.label.Draw(screen, r.X+menuPadX, r.Y+menuPadY)
	}
}
