package world

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

var colorBush = rgba(0x3BA13B, 0.9)

var enhancedBushLeaves = []voxfolio.Vec3{
	{}, {Y: 1},
	{X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {Y: 0.5, Z: 0.5}, {Y: 0.5, Z: -0.5},
	{X: 0.7}, {X: -0.7}, {Z: 0.7}, {Z: -0.7},
}

var simpleBushSides = []voxfolio.Vec3{{X: 0.4}, {X: -0.4}, {Z: 0.4}, {Z: -0.4}}

// bush places a leaf cluster centered on (x, y, z). Enhanced bushes are a
// fixed ten leaf mound; simple bushes have a core and up to four side
// leaves.
func (b *builder) bush(tag string, x, y, z float64, enhanced bool) {
	if enhanced {
		for _, o := range enhancedBushLeaves {
			b.block(tag, "bush", colorBush, v(x+o.X, y+o.Y, z+o.Z), uniform(0.9))
		}
		return
	}
	leaves := []voxfolio.Vec3{{}, {Y: 0.5}}
	for _, o := range simpleBushSides {
		if b.rng.Float64() < 0.7 {
			leaves = append(leaves, o)
		}
	}
	for _, o := range leaves {
		b.block(tag, "bush", colorBush, v(x+o.X, y+o.Y, z+o.Z), uniform(0.7))
	}
}

// bushes scatters bushes along both river banks, away from the path and
// the bridge.
func (b *builder) bushes() {
	r := b.rng
	for x := -Size; x <= Size; x++ {
		for z := -Size; z <= Size; z++ {
			fx, fz := float64(x), float64(z)
			dist := RiverDistance(fx, fz)
			width := RiverWidth(fx)
			if dist <= width+1 || dist >= width+3 || nearPath(fx, fz, 2) {
				continue
			}
			if pathLineDistance(fx, fz) <= 4 || math.Abs(fx-BridgeX) <= 3 {
				continue
			}
			noise := math.Sin(fx*0.8) * math.Cos(fz*0.8) * 0.5
			if r.Float64() >= 0.25*(1+noise) {
				continue
			}
			b.bush(TagBush, fx, 1+r.Float64()*0.5, fz, true)

			if r.Float64() < 0.4 {
				for range 2 {
					nx := fx + (r.Float64()-0.5)*0.6
					nz := fz + (r.Float64()-0.5)*0.6
					if RiverDistance(nx, nz) > width+1 {
						b.bush(TagBush, nx, 1, nz, false)
					}
				}
			}
		}
	}
}
