// Package world generates the voxel portfolio map: terrain carved by a
// river, a house with its garden, trees, bushes, a rabbit on the hill,
// fish, clouds and a treasure chest.
//
// Generation is deterministic for a given seed. Every placed object is
// added to the scene graph and to the scene's object registry so it can be
// hit by rays, and carries the tag of the structure that created it.
package world

import (
	"log/slog"
	"math/rand/v2"

	"github.com/phanxgames/voxfolio"
)

// Structure tags.
const (
	TagTerrain    = "terrain"
	TagGround     = "ground"
	TagWater      = "water"
	TagBridge     = "bridge"
	TagHouse      = "house"
	TagGarden     = "garden"
	TagMailbox    = "mailbox"
	TagTree       = "tree"
	TagCherryTree = "cherry-tree"
	TagAppleTree  = "apple-tree"
	TagBush       = "bush"
	TagRabbit     = "rabbit"
	TagFish       = "fish"
	TagCloud      = "cloud"
	TagChest      = "chest"
)

// Options control generation.
type Options struct {
	// Seed feeds the single random source used for every random choice.
	Seed uint64
	// Fish is the number of fish placed along the river.
	Fish int
	// AppleTree replaces the cherry tree beyond the bridge with an apple tree.
	AppleTree bool
}

// DefaultOptions returns the stock map settings.
func DefaultOptions() Options {
	return Options{Seed: 1, Fish: 12}
}

// World is the result of a generation run.
type World struct {
	Terrain *Terrain
	Water   *Water
	// Landmarks maps structure tags to their anchor point.
	Landmarks map[string]voxfolio.Vec3

	Fish   []*voxfolio.Node
	Clouds []*voxfolio.Node
	// Hoverable are the nodes that scale up under the pointer.
	Hoverable []*voxfolio.Node
}

// Landmark returns the anchor recorded for tag.
func (w *World) Landmark(tag string) (voxfolio.Vec3, bool) {
	p, ok := w.Landmarks[tag]
	return p, ok
}

// Generate populates scene with the whole map, sets its sky and light, and
// registers ambient animation rules on the scene's animation registry.
func Generate(scene *voxfolio.Scene, opts Options) *World {
	b := &builder{
		scene: scene,
		rng:   rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	w := &World{Landmarks: make(map[string]voxfolio.Vec3)}

	ApplyAtmosphere(scene)
	w.Terrain = buildTerrain(b)
	Ground(scene, w.Terrain)
	w.Water = NewWater(scene)

	bridgeStart := BridgeZ - BridgeLength/2
	b.bridge(BridgeX, 0, bridgeStart, BridgeLength)
	w.Landmarks[TagBridge] = voxfolio.Vec3{X: BridgeX, Z: BridgeZ}

	treeX, treeZ := float64(HouseX-4), float64(HouseZ+2)
	if RiverDistance(treeX, treeZ) > 6 {
		b.tree(treeX, 0, treeZ)
		w.Landmarks[TagTree] = voxfolio.Vec3{X: treeX, Z: treeZ}
	}

	b.house(w, HouseX, 0, HouseZ)
	b.bushes()

	tx, tz := float64(BridgeX), bridgeStart-4
	if opts.AppleTree {
		b.appleTree(tx, 0, tz)
		w.Landmarks[TagAppleTree] = voxfolio.Vec3{X: tx, Z: tz}
	} else {
		b.cherryTree(tx, 0, tz)
		w.Landmarks[TagCherryTree] = voxfolio.Vec3{X: tx, Z: tz}
	}

	w.Hoverable = append(w.Hoverable, b.rabbit(HillX, HillTop, HillZ))
	w.Landmarks[TagRabbit] = voxfolio.Vec3{X: HillX, Y: HillTop, Z: HillZ}

	for range opts.Fish {
		w.Fish = append(w.Fish, b.fish())
	}
	for _, p := range cloudPositions {
		w.Clouds = append(w.Clouds, b.cloud(p))
	}

	chest := b.chest(ChestX, 0, ChestZ)
	w.Hoverable = append(w.Hoverable, chest)
	w.Landmarks[TagChest] = voxfolio.Vec3{X: ChestX, Z: ChestZ}

	animate(scene, w)

	slog.Debug("world generated", "component", "world",
		"seed", opts.Seed, "objects", len(scene.Objects()), "fish", len(w.Fish))
	return w
}

// builder places tagged geometry into a scene.
type builder struct {
	scene *voxfolio.Scene
	rng   *rand.Rand
}

func rgba(hex uint32, a float64) voxfolio.Color {
	c := voxfolio.RGB(hex)
	c.A = a
	return c
}

// block adds a tracked box at pos with the given scale.
func (b *builder) block(tag, name string, c voxfolio.Color, pos, scale voxfolio.Vec3) *voxfolio.Node {
	n := voxfolio.NewBox(name, c)
	n.Tag = tag
	n.Position = pos
	n.Scale = scale
	b.scene.Add(n)
	return n
}

// cube adds a tracked unit box at pos.
func (b *builder) cube(tag, name string, c voxfolio.Color, pos voxfolio.Vec3) *voxfolio.Node {
	return b.block(tag, name, c, pos, voxfolio.Vec3{X: 1, Y: 1, Z: 1})
}

// group adds a tracked group at pos. Its parts are added with part.
func (b *builder) group(tag, name string, pos voxfolio.Vec3) *voxfolio.Node {
	g := voxfolio.NewGroup(name)
	g.Tag = tag
	g.Position = pos
	b.scene.Add(g)
	return g
}

// part adds an untracked box to parent in parent space.
func part(parent *voxfolio.Node, name string, c voxfolio.Color, pos, scale, rot voxfolio.Vec3) *voxfolio.Node {
	n := voxfolio.NewBox(name, c)
	n.Position = pos
	n.Scale = scale
	n.Rotation = rot
	parent.AddChild(n)
	return n
}

func v(x, y, z float64) voxfolio.Vec3 { return voxfolio.Vec3{X: x, Y: y, Z: z} }

func uniform(s float64) voxfolio.Vec3 { return voxfolio.Vec3{X: s, Y: s, Z: s} }
