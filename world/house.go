package world

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

const (
	houseWidth  = 6
	houseLength = 7
	houseHeight = 4

	gardenWidth  = 5
	gardenLength = 6
)

var (
	colorWall   = voxfolio.RGB(0xE8E8E8)
	colorAccent = voxfolio.RGB(0x4A4A4A)
	colorWindow = rgba(0x88CCFF, 0.6)
	colorSmoke  = rgba(0x808080, 0.3)
	colorStem   = voxfolio.RGB(0x2E8B57)
	colorCenter = voxfolio.RGB(0xFFFF00)
	colorLeaf   = voxfolio.RGB(0x3BA13B)
)

// Flower colors. Each one has its own petal pattern.
const (
	FlowerDaisy     uint32 = 0xFF69B4
	FlowerSunflower uint32 = 0xFFFF00
	FlowerRose      uint32 = 0xFF0000
	FlowerTulip     uint32 = 0xFFA500
)

var flowerColors = []uint32{FlowerDaisy, FlowerSunflower, FlowerRose, FlowerTulip}

type cell3 struct{ x, y, z int }

var windowCells = []cell3{
	{1, 1, 0}, {4, 1, 0}, // front, ground floor
	{1, 3, 0}, {4, 3, 0}, // front, upper floor
	{0, 2, 2}, {0, 2, 4},
	{houseWidth - 1, 2, 2}, {houseWidth - 1, 2, 4},
}

// house builds the house with (x, z) as its front-left corner, then the
// garden, mailbox and chimney that belong to it.
func (b *builder) house(w *World, x, y, z float64) {
	const tag = TagHouse
	t := w.Terrain

	windows := make(map[cell3]bool, len(windowCells))
	for _, c := range windowCells {
		windows[c] = true
	}

	for h := range houseHeight {
		for wi := range houseWidth {
			for l := range houseLength {
				interior := wi > 0 && wi < houseWidth-1 && l > 0 && l < houseLength-1 && h > 0
				door := h < 2 && (wi == 2 || wi == 3) && l == 0
				if interior || door {
					continue
				}
				pos := v(x+float64(wi), y+float64(h), z+float64(l))
				if windows[cell3{wi, h, l}] {
					b.cube(tag, "window", colorWindow, pos)
					continue
				}
				if h == 0 {
					t.claim(int(pos.X), int(pos.Y), int(pos.Z))
				}
				b.cube(tag, "wall", colorWall, pos)
			}
		}
	}

	// Flat roof with a one block overhang.
	for wi := -1; wi <= houseWidth; wi++ {
		for l := -1; l <= houseLength; l++ {
			b.cube(tag, "roof", colorAccent, v(x+float64(wi), y+houseHeight, z+float64(l)))
		}
	}
	for h := range houseHeight {
		b.cube(tag, "accent", colorAccent, v(x+houseWidth/2, y+float64(h), z-0.2))
	}

	for _, c := range [][2]float64{{-1, -1}, {houseWidth, -1}, {-1, houseLength}, {houseWidth, houseLength}} {
		b.bush(tag, x+c[0], y+1, z+c[1], false)
	}

	b.chimney(x+houseWidth-2, y+houseHeight, z+2)
	w.Landmarks[TagHouse] = v(x, y, z)

	gx, gz := x+houseWidth+4, z+1
	b.garden(t, gx, y, gz)
	b.fence(gx-1, y, gz-1, gardenWidth+2, gardenLength+2)
	w.Landmarks[TagGarden] = v(gx, y, gz)

	mx, mz := x+houseWidth/2+2, z-2
	w.Hoverable = append(w.Hoverable, b.mailbox(mx, y, mz))
	w.Landmarks[TagMailbox] = v(mx, y, mz)
}

// chimney stands on the roof at base height y.
func (b *builder) chimney(x, y, z float64) {
	const tag = TagHouse
	const levels = 3
	for h := range levels {
		for cx := range 2 {
			for cz := range 2 {
				b.block(tag, "chimney", colorAccent,
					v(x+float64(cx)*0.8, y+float64(h), z+float64(cz)*0.8), v(0.8, 1, 0.8))
			}
		}
	}
	for _, cx := range []float64{-0.2, 1.2} {
		for _, cz := range []float64{-0.2, 1.2} {
			b.block(tag, "chimney-rim", colorAccent, v(x+cx, y+levels, z+cz), uniform(0.4))
		}
	}
	b.block(tag, "chimney-top", colorAccent, v(x+0.4, y+levels+0.3, z+0.4), v(2, 0.2, 2))
	for h := range 2 {
		b.block(tag, "smoke", colorSmoke, v(x+0.4, y+levels+0.8+float64(h)*0.5, z+0.4), uniform(0.6))
	}
}

// garden turns the ground under the plot into soil and plants a flower in
// every other cell.
func (b *builder) garden(t *Terrain, x, y, z float64) {
	const tag = TagGarden
	for wi := 0; wi <= gardenWidth; wi++ {
		for l := 0; l <= gardenLength; l++ {
			cx, cy, cz := int(x)+wi, int(y), int(z)+l
			if n := t.block(cx, cy, cz); n != nil {
				n.Name = "soil"
				n.Tag = tag
				n.Color = colorDirt
				n.FaceColors = nil
				continue
			}
			b.cube(tag, "soil", colorDirt, v(float64(cx), float64(cy), float64(cz)))
		}
	}
	for wi := 1; wi < gardenWidth; wi += 2 {
		for l := 1; l < gardenLength; l += 2 {
			c := flowerColors[b.rng.IntN(len(flowerColors))]
			b.flower(x+float64(wi), y, z+float64(l), c)
		}
	}
}

// flower plants a stem with a yellow center and petals laid out by kind.
func (b *builder) flower(x, y, z float64, hex uint32) {
	const tag = TagGarden
	petal := voxfolio.RGB(hex)
	b.block(tag, "stem", colorStem, v(x, y+0.4, z), v(0.1, 0.8, 0.1))
	b.block(tag, "flower-center", colorCenter, v(x, y+0.9, z), uniform(0.2))

	switch hex {
	case FlowerDaisy:
		for _, p := range [][2]float64{
			{0.2, 0}, {-0.2, 0}, {0, 0.2}, {0, -0.2},
			{0.15, 0.15}, {-0.15, 0.15}, {0.15, -0.15}, {-0.15, -0.15},
		} {
			b.block(tag, "petal", petal, v(x+p[0], y+0.9, z+p[1]), v(0.2, 0.1, 0.2))
		}
	case FlowerSunflower:
		for i := range 12 {
			a := float64(i) * math.Pi / 6
			n := b.block(tag, "petal", petal, v(x+math.Cos(a)*0.25, y+0.9, z+math.Sin(a)*0.25), v(0.25, 0.1, 0.15))
			n.Rotation.Y = a
		}
	case FlowerRose:
		layers := []struct {
			radius float64
			count  int
			height float64
		}{{0.15, 4, 0.9}, {0.25, 6, 0.85}, {0.3, 6, 0.8}}
		for _, layer := range layers {
			for i := range layer.count {
				a := float64(i) / float64(layer.count) * 2 * math.Pi
				b.block(tag, "petal", petal,
					v(x+math.Cos(a)*layer.radius, y+layer.height, z+math.Sin(a)*layer.radius), v(0.2, 0.15, 0.2))
			}
		}
	case FlowerTulip:
		for _, p := range []voxfolio.Vec3{{Y: 0.2}, {X: 0.15}, {X: -0.15}, {Z: 0.15}, {Z: -0.15}} {
			b.block(tag, "petal", petal, v(x+p.X, y+0.8+p.Y, z+p.Z), v(0.2, 0.3, 0.2))
		}
	}

	for _, l := range []struct{ x, y, rot float64 }{{0.15, 0.3, math.Pi / 4}, {-0.15, 0.4, -math.Pi / 4}} {
		n := b.block(tag, "stem-leaf", colorLeaf, v(x+l.x, y+l.y, z), v(0.2, 0.05, 0.1))
		n.Rotation.Y = l.rot
	}
}

// fence encloses a width x length rectangle with (x, z) as one corner.
func (b *builder) fence(x, y, z float64, width, length int) {
	const tag = TagGarden
	for wi := 0; wi <= width; wi++ {
		for l := 0; l <= length; l++ {
			edge := wi == 0 || wi == width || l == 0 || l == length
			if edge && (wi%2 == 0 || l%2 == 0) {
				b.block(tag, "fence-post", colorWood, v(x+float64(wi), y+0.5, z+float64(l)), v(0.2, 1, 0.2))
			}
		}
	}
	for wi := 0; wi <= width; wi++ {
		for l := 0; l <= length; l++ {
			if wi < width && (l == 0 || l == length) {
				b.block(tag, "fence-beam", colorWood, v(x+float64(wi)+0.5, y+0.7, z+float64(l)), v(1, 0.1, 0.1))
			}
			if l < length && (wi == 0 || wi == width) {
				b.block(tag, "fence-beam", colorWood, v(x+float64(wi), y+0.7, z+float64(l)+0.5), v(0.1, 0.1, 1))
			}
		}
	}
}

// mailbox builds the mailbox and returns its body.
func (b *builder) mailbox(x, y, z float64) *voxfolio.Node {
	const tag = TagMailbox
	b.block(tag, "mailbox-post", colorWood, v(x, y+0.75, z), v(0.3, 1.5, 0.3))
	body := b.block(tag, "mailbox", voxfolio.RGB(0x2F4F4F), v(x, y+1.5, z), v(0.8, 0.6, 1.2))
	b.block(tag, "mailbox-roof", voxfolio.RGB(0x1C1C1C), v(x, y+1.85, z), v(0.9, 0.1, 1.3))
	b.block(tag, "mailbox-flag", voxfolio.RGB(0xFF0000), v(x+0.45, y+1.6, z-0.3), v(0.1, 0.4, 0.3))
	return body
}
