package world

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

var (
	colorFoliage     = rgba(0x2d5a27, 0.9)
	colorDarkFoliage = rgba(0x1a3d19, 0.9)
	colorApple       = voxfolio.RGB(0xFF0000)
)

var blossomColors = []voxfolio.Color{
	rgba(0xFFB7C5, 0.9),
	rgba(0xFF69B4, 0.85),
	rgba(0xFFC0CB, 0.95),
	rgba(0xFFE4E1, 0.9),
}

// branch is a limb of a large tree, as an offset from the tree base.
type branch struct {
	x, y, z    float64
	rotY, rotZ float64
	length     float64
	thickness  float64
}

var cherryBranches = []branch{
	{x: 2.5, y: 4, rotY: math.Pi / 4, length: 3, thickness: 0.8},
	{x: -2.5, y: 4.5, rotY: -math.Pi / 4, length: 3, thickness: 0.8},
	{y: 5, z: 2.5, rotZ: math.Pi / 4, length: 2.5, thickness: 0.8},
	{y: 4.5, z: -2.5, rotZ: -math.Pi / 4, length: 2.5, thickness: 0.8},

	{x: 1.8, y: 5.5, z: 1.8, rotY: math.Pi / 6, length: 2, thickness: 0.6},
	{x: -1.8, y: 5.5, z: -1.8, rotY: -math.Pi / 6, length: 2, thickness: 0.6},
	{x: -1.8, y: 5, z: 1.8, rotY: -math.Pi / 3, length: 2, thickness: 0.6},
	{x: 1.8, y: 5, z: -1.8, rotY: math.Pi / 3, length: 2, thickness: 0.6},

	{x: 1.2, y: 6, z: 0.8, rotY: math.Pi / 5, length: 1.2, thickness: 0.4},
	{x: -1.2, y: 6, z: -0.8, rotY: -math.Pi / 5, length: 1.2, thickness: 0.4},
	{x: 0.8, y: 5.8, z: 1.2, rotZ: math.Pi / 5, length: 1.2, thickness: 0.4},
	{x: -0.8, y: 5.8, z: -1.2, rotZ: -math.Pi / 5, length: 1.2, thickness: 0.4},
}

var appleBranches = []branch{
	{x: 1.5, y: 4, rotY: math.Pi / 4, length: 2.5, thickness: 0.9},
	{x: -1.5, y: 5, rotY: -math.Pi / 4, length: 2.5, thickness: 0.9},
	{y: 5, z: 1.5, rotZ: math.Pi / 4, length: 2, thickness: 0.8},
	{y: 4, z: -1.5, rotZ: -math.Pi / 4, length: 2, thickness: 0.8},
	{x: 1, y: 6, z: 1, rotY: math.Pi / 6, length: 1.5, thickness: 0.7},
	{x: -1, y: 6, z: -1, rotY: -math.Pi / 6, length: 1.5, thickness: 0.7},
}

// tree is the small tree by the house: a trunk under a plus shaped crown.
func (b *builder) tree(x, y, z float64) {
	const tag = TagTree
	b.block(tag, "trunk", colorWood, v(x, y+2, z), v(1, 4, 1))
	plus := [][2]float64{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, ly := range []float64{4, 5} {
		for _, p := range plus {
			b.cube(tag, "leaves", colorFoliage, v(x+p[0], y+ly, z+p[1]))
		}
	}
	b.cube(tag, "leaves", colorFoliage, v(x, y+6, z))
}

// largeTrunk builds the thick trunk, bark and limbs shared by the cherry
// and apple trees.
func (b *builder) largeTrunk(tag string, x, y, z float64, limbs []branch) {
	b.block(tag, "trunk", colorWood, v(x, y+3, z), v(1.4, 6, 1.4))
	for _, d := range []struct{ x, y, z, s float64 }{
		{0.7, 2, 0, 0.3}, {-0.7, 3, 0.2, 0.4}, {0, 4, 0.7, 0.3}, {-0.2, 1, -0.7, 0.4},
	} {
		b.block(tag, "bark", colorWood, v(x+d.x, y+d.y, z+d.z), v(d.s, 1, d.s))
	}
	for _, br := range limbs {
		n := b.block(tag, "branch", colorWood, v(x+br.x, y+br.y, z+br.z), v(br.thickness, br.thickness, br.length))
		n.Rotation = v(0, br.rotY, br.rotZ)
	}
}

// cherryTree builds a cherry tree with a half sphere of blossoms and a few
// falling petals below it.
func (b *builder) cherryTree(x, y, z float64) {
	const tag = TagCherryTree
	b.largeTrunk(tag, x, y, z, cherryBranches)

	r := b.rng
	for lx := -5; lx <= 5; lx++ {
		for ly := 0; ly <= 5; ly++ {
			for lz := -5; lz <= 5; lz++ {
				d := math.Sqrt(float64(lx*lx + ly*ly + lz*lz))
				if d > 5 || r.Float64() < 0.2 {
					continue
				}
				c := blossomColors[r.IntN(len(blossomColors))]
				size := 0.4 + r.Float64()*0.4
				pos := v(
					x+float64(lx)+r.Float64()*0.4-0.2,
					y+float64(ly)+5+r.Float64()*0.4-0.2,
					z+float64(lz)+r.Float64()*0.4-0.2,
				)
				n := b.block(tag, "blossom", c, pos, uniform(size))
				n.Rotation = v(r.Float64()*2*math.Pi, r.Float64()*2*math.Pi, r.Float64()*2*math.Pi)

				if r.Float64() < 0.1 {
					pos := v(
						x+float64(lx)+r.Float64()*2-1,
						y+float64(ly)+3+r.Float64()*2,
						z+float64(lz)+r.Float64()*2-1,
					)
					p := b.block(tag, "petal", c, pos, v(0.2, 0.05, 0.2))
					p.Rotation = v(r.Float64()*math.Pi, r.Float64()*math.Pi, math.Pi/4+r.Float64()*math.Pi/4)
				}
			}
		}
	}
}

// appleTree builds an apple tree with a leafy crown and apples hanging
// from its lowest layer.
func (b *builder) appleTree(x, y, z float64) {
	const tag = TagAppleTree
	b.largeTrunk(tag, x, y, z, appleBranches)

	r := b.rng
	for lx := -4; lx <= 4; lx++ {
		for ly := 0; ly <= 4; ly++ {
			for lz := -4; lz <= 4; lz++ {
				d := math.Sqrt(float64(lx*lx + ly*ly + lz*lz))
				if d > 4 || r.Float64() < 0.3 {
					continue
				}
				c := colorFoliage
				if r.Float64() <= 0.3 {
					c = colorDarkFoliage
				}
				size := 0.8 + r.Float64()*0.4
				pos := v(
					x+float64(lx)+r.Float64()*0.3-0.15,
					y+float64(ly)+6,
					z+float64(lz)+r.Float64()*0.3-0.15,
				)
				n := b.block(tag, "leaves", c, pos, uniform(size))
				n.Rotation = v(r.Float64()*0.2, r.Float64()*2*math.Pi, r.Float64()*0.2)

				if r.Float64() < 0.15 && ly == 0 {
					pos := v(
						x+float64(lx)+r.Float64()*0.3-0.15,
						y+float64(ly)+4.2,
						z+float64(lz)+r.Float64()*0.3-0.15,
					)
					b.block(tag, "apple", colorApple, pos, uniform(0.5))
					b.block(tag, "apple-stem", colorWood, v(pos.X, pos.Y+0.4, pos.Z), v(0.12, 0.25, 0.12))
				}
			}
		}
	}
}
