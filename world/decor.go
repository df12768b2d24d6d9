package world

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

var cloudPositions = []voxfolio.Vec3{
	{X: -15, Y: 15, Z: -15},
	{X: 5, Y: 18, Z: 0},
	{X: 15, Y: 16, Z: 15},
	{X: -10, Y: 17, Z: 10},
	{X: 0, Y: 19, Z: -10},
}

var cloudSegments = []struct{ pos, scale voxfolio.Vec3 }{
	{v(0, 0, 0), v(2, 1, 2)},
	{v(-1, 0.2, 0), v(1.5, 0.8, 1.5)},
	{v(1, 0.3, 0), v(1.7, 0.9, 1.7)},
	{v(0, 0.4, 1), v(1.4, 0.7, 1.4)},
	{v(0, 0.1, -1), v(1.6, 0.8, 1.6)},
	{v(-1, 0.2, 1), v(1.3, 0.6, 1.3)},
	{v(1, 0.3, -1), v(1.5, 0.7, 1.5)},
}

// cloud places a puff of overlapping white boxes centered on pos.
func (b *builder) cloud(pos voxfolio.Vec3) *voxfolio.Node {
	g := b.group(TagCloud, "cloud", pos)
	white := rgba(0xFFFFFF, 0.8)
	for _, s := range cloudSegments {
		part(g, "cloud-puff", white, s.pos, s.scale, voxfolio.Vec3{})
	}
	return g
}

// chest builds the open treasure chest at (x, y, z) and returns its group.
func (b *builder) chest(x, y, z float64) *voxfolio.Node {
	var (
		wood     = colorWood
		darkWood = voxfolio.RGB(0x654321)
		metal    = voxfolio.RGB(0xB8860B)
		gold     = voxfolio.RGB(0xFFD700)
		black    = voxfolio.RGB(0x111111)
		none     = voxfolio.Vec3{}
	)
	g := b.group(TagChest, "chest", v(x, y, z))

	part(g, "chest-body", wood, v(0, 0.75, 0), v(2.2, 1.5, 1.6), none)
	part(g, "chest-lining", darkWood, v(0, 0.75, 0), v(2, 1.3, 1.4), none)

	for _, sx := range []float64{-1, 1} {
		for _, sz := range []float64{-0.7, 0.7} {
			part(g, "frame-post", metal, v(sx, 0.75, sz), v(0.2, 1.5, 0.2), none)
		}
		part(g, "side-band", metal, v(sx, 0.75, 0), v(0.1, 1.5, 1.6), none)
	}
	for _, sz := range []float64{0.7, -0.7} {
		for _, by := range []float64{0.3, 1.2} {
			part(g, "band", metal, v(0, by, sz), v(2.2, 0.15, 0.1), none)
		}
	}
	part(g, "center-band", metal, v(0, 0.75, 0), v(2.2, 0.3, 0.1), none)

	part(g, "lock", metal, v(0, 0.75, 0.8), v(0.6, 0.6, 0.2), none)
	part(g, "lock-plate", darkWood, v(0, 0.75, 0.9), v(0.4, 0.4, 0.1), none)
	part(g, "keyhole", black, v(0, 0.75, 1), v(0.15, 0.25, 0.1), none)

	for _, sz := range []float64{0.7, -0.7} {
		for _, sy := range []float64{0.2, 1.3} {
			for _, sx := range []float64{-0.9, 0.9} {
				part(g, "stud", metal, v(sx, sy, sz), uniform(0.2), none)
			}
		}
	}

	r := b.rng
	for range 8 {
		pos := v((r.Float64()-0.5)*1.4, 1.2, (r.Float64()-0.5)*0.8)
		part(g, "coin", gold, pos, v(0.25, 0.08, 0.25), v(0, r.Float64()*math.Pi, 0))
	}
	part(g, "gold", gold, v(-0.5, 1.1, 0), v(0.4, 0.2, 0.3), none)
	part(g, "gold", gold, v(0.4, 1.1, 0.2), v(0.3, 0.25, 0.3), none)
	part(g, "ruby", voxfolio.RGB(0xFF0000), v(0, 1.2, 0.3), uniform(0.2), none)
	part(g, "sapphire", voxfolio.RGB(0x0000FF), v(-0.3, 1.2, -0.2), uniform(0.2), none)
	return g
}
