package world

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

const (
	waterExtent = 100
	waterTiles  = 10 // per side
	waterHeight = 0.01
)

// Water is the translucent sheet laid over the map at water level. It is
// split into tiles so each tile sorts against the terrain on its own.
// Water is drawn but never hit by rays.
type Water struct {
	Node *voxfolio.Node
}

// NewWater adds the water sheet to scene.
func NewWater(scene *voxfolio.Scene) *Water {
	g := voxfolio.NewGroup("water")
	g.Tag = TagWater
	g.Interactable = false
	tile := float64(waterExtent) / waterTiles
	start := -float64(waterExtent)/2 + tile/2
	for i := range waterTiles {
		for j := range waterTiles {
			p := voxfolio.NewPlane("water-tile", voxfolio.RGB(0x4444ff))
			p.Position = v(start+float64(i)*tile, waterHeight, start+float64(j)*tile)
			p.Scale = v(tile, 1, tile)
			p.Unlit = true
			g.AddChild(p)
		}
	}
	scene.Root().AddChild(g)
	w := &Water{Node: g}
	w.Shimmer(0)
	return w
}

// Opacity returns the sheet opacity at the given time in milliseconds.
func Opacity(nowMillis float64) float64 {
	return 0.6 + math.Sin(nowMillis*0.001)*0.1
}

// Shimmer updates the sheet opacity for the given time in milliseconds.
func (w *Water) Shimmer(nowMillis float64) {
	w.Node.SetAlpha(Opacity(nowMillis))
}
