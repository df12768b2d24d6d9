package world

import "github.com/phanxgames/voxfolio"

var (
	colorWood    = voxfolio.RGB(0x8B4513)
	colorRailing = voxfolio.RGB(0x6B4423)
	colorSupport = voxfolio.RGB(0x5C4033)
	colorStone   = voxfolio.RGB(0x808080)
)

// bridge spans the river along +z starting at z, length planks long and
// three planks wide, centered on x.
func (b *builder) bridge(x, y, z float64, length int) {
	const tag = TagBridge
	n := float64(length)

	// Stone foundations just outside both ends.
	for side := range 2 {
		fz := z - 1
		if side == 1 {
			fz = z + n
		}
		for h := -1.0; h <= 0; h++ {
			for w := -1.0; w <= 1; w++ {
				b.cube(tag, "foundation", colorStone, v(x+w, y+h, fz))
			}
		}
	}

	for i := range length {
		pz := z + float64(i)

		for wide := -1.0; wide <= 1; wide++ {
			b.block(tag, "plank", colorWood, v(x+wide, y+0.5, pz), v(0.95, 0.2, 0.95))
		}

		if i%3 == 0 {
			for h := -1.0; h <= 0; h++ {
				for _, side := range []float64{-1.2, 1.2} {
					b.block(tag, "support", colorSupport, v(x+side, y+h, pz), v(0.4, 1, 0.4))
				}
				b.block(tag, "cross-beam", colorSupport, v(x, y+h-0.3, pz), v(2.8, 0.3, 0.3))
			}
		}

		for _, side := range []float64{-1.2, 1.2} {
			if i%2 == 0 {
				b.block(tag, "post", colorRailing, v(x+side, y+1.1, pz), v(0.3, 1.2, 0.3))
				b.block(tag, "post-cap", colorRailing, v(x+side, y+1.8, pz), v(0.4, 0.15, 0.4))
			}
			if i < length-1 {
				b.block(tag, "rail", colorRailing, v(x+side, y+1.6, pz+0.5), v(0.2, 0.2, 1.1))
				b.block(tag, "rail", colorRailing, v(x+side, y+1.0, pz+0.5), v(0.2, 0.2, 1.1))
			}
		}
	}
}
