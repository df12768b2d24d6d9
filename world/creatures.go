package world

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

var fishColors = []uint32{
	0xFF6B6B, // coral
	0x4ECDC4, // turquoise
	0xFFBE0B, // gold
	0xFF9F1C, // orange
}

// rabbit sits on the hill top. Parts are laid out facing -z with (x, y, z)
// at the feet. Returns the rabbit group.
func (b *builder) rabbit(x, y, z float64) *voxfolio.Node {
	var (
		fur   = voxfolio.RGB(0xFFFFFF)
		pink  = voxfolio.RGB(0xFFB6C1)
		eye   = voxfolio.RGB(0xFF0000)
		black = voxfolio.RGB(0x000000)
		none  = voxfolio.Vec3{}
	)
	g := b.group(TagRabbit, "rabbit", v(x, y, z))

	part(g, "body", fur, v(0, 0.65, 0), v(1.2, 1.3, 1.0), none)
	part(g, "haunches", fur, v(0, 0.4, 0), v(1.4, 0.8, 1.2), none)
	part(g, "head", fur, v(0, 1.6, -0.4), v(0.9, 0.9, 0.8), none)

	for _, s := range []float64{1, -1} {
		ex := 0.25 * s
		part(g, "ear", fur, v(ex, 2.6, -0.65), v(0.25, 0.8, 0.15), v(math.Pi/6, 0, 0))
		part(g, "inner-ear", pink, v(ex, 2.55, -0.63), v(0.15, 0.7, 0.07), v(math.Pi/6, 0, 0))
		part(g, "eye", eye, v(ex, 1.75, -0.7), v(0.25, 0.25, 0.15), none)
		part(g, "pupil", black, v(ex, 1.75, -0.77), v(0.15, 0.15, 0.07), none)
		part(g, "paw", fur, v(0.4*s, 0.2, -0.4), v(0.3, 0.4, 0.3), none)
		for _, dy := range []float64{0.1, 0, -0.1} {
			part(g, "whisker", black, v(0.5*s, 1.55+dy, -0.8), v(0.4, 0.02, 0.02), none)
		}
	}
	part(g, "nose", pink, v(0, 1.55, -0.85), v(0.2, 0.15, 0.15), none)
	part(g, "tail", fur, v(0, 0.5, 0.6), uniform(0.5), none)
	return g
}

// fish places one fish near the river centerline at a random x. Fish swim
// at water level and are not hit-tested.
func (b *builder) fish() *voxfolio.Node {
	r := b.rng
	c := voxfolio.RGB(fishColors[r.IntN(len(fishColors))])
	fin := c
	fin.A = 0.7
	x := r.Float64()*(RiverEndX-RiverStartX) + RiverStartX
	z := RiverZ(x) + r.Float64()*2 - 1

	g := voxfolio.NewGroup("fish")
	g.Tag = TagFish
	g.Position = v(x, WaterLevel, z)
	g.Scale = uniform(0.4)
	g.Interactable = false

	none := voxfolio.Vec3{}
	part(g, "body", c, none, v(0.6, 0.3, 0.4), none)
	part(g, "body", c, v(0.25, 0, 0), v(0.3, 0.25, 0.3), none)
	part(g, "body", c, v(-0.25, 0, 0), v(0.3, 0.25, 0.3), none)
	part(g, "nose", c, v(0.4, 0, 0), uniform(0.2), none)

	part(g, "tail", c, v(-0.4, 0, 0), v(0.2, 0.4, 0.4), none)
	part(g, "tail", c, v(-0.5, 0, 0.2), v(0.15, 0.3, 0.2), v(0, math.Pi/4, 0))
	part(g, "tail", c, v(-0.5, 0, -0.2), v(0.15, 0.3, 0.2), v(0, -math.Pi/4, 0))

	part(g, "dorsal-fin", fin, v(0, 0.2, 0), v(0.4, 0.3, 0.05), v(0, 0, math.Pi/5))
	for _, s := range []float64{1, -1} {
		part(g, "side-fin", fin, v(0, -0.1, 0.2*s), v(0.25, 0.05, 0.2), v(0, 0, s*math.Pi/3))
		part(g, "eye", voxfolio.RGB(0xFFFFFF), v(0.35, 0.05, 0.15*s), uniform(0.12), none)
		part(g, "pupil", voxfolio.RGB(0x000000), v(0.4, 0.05, 0.15*s), uniform(0.06), none)
	}

	b.scene.Root().AddChild(g)
	return g
}
