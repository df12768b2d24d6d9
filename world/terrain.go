package world

import (
	"github.com/phanxgames/voxfolio"
)

// Surface is the kind of top block chosen for a terrain cell.
type Surface uint8

const (
	SurfaceGrass    Surface = iota // grass block on land
	SurfacePath                    // gravel path block on land
	SurfaceRiverbed                // sand or dirt under water
)

// String returns the surface name.
func (s Surface) String() string {
	switch s {
	case SurfaceGrass:
		return "grass"
	case SurfacePath:
		return "path"
	case SurfaceRiverbed:
		return "riverbed"
	default:
		return "unknown"
	}
}

// Terrain colors.
var (
	colorGrassSide = voxfolio.RGB(0x7FB238)
	colorGrassTop  = voxfolio.RGB(0x91BD59)
	colorDirt      = voxfolio.RGB(0x8B7355)
	colorSand      = voxfolio.RGB(0xDCD0A6)
	colorPath      = voxfolio.RGB(0x808080)
)

// lowestBlock is the y of the deepest dirt block under land.
const lowestBlock = -3

// Cell records what was generated for one (x, z) column.
type Cell struct {
	X, Z int
	// Height is the surface height. River heights are fractional.
	Height  float64
	Surface Surface
	// Blocks is the number of blocks stacked in the column.
	Blocks int
}

type blockKey struct{ x, y, z int }

// Terrain is the generated ground: one column of blocks per cell.
type Terrain struct {
	cells []Cell
	index map[[2]int]int
	solid map[blockKey]*voxfolio.Node
}

// Cells returns every cell in generation order (x-major).
func (t *Terrain) Cells() []Cell {
	return t.cells
}

// Cell returns the record for the column at (x, z).
func (t *Terrain) Cell(x, z int) (Cell, bool) {
	i, ok := t.index[[2]int{x, z}]
	if !ok {
		return Cell{}, false
	}
	return t.cells[i], true
}

// Solid reports whether a terrain block occupies (x, y, z).
func (t *Terrain) Solid(x, y, z int) bool {
	_, ok := t.solid[blockKey{x, y, z}]
	return ok
}

// Blocks returns the number of terrain blocks.
func (t *Terrain) Blocks() int {
	return len(t.solid)
}

func buildTerrain(b *builder) *Terrain {
	t := &Terrain{
		index: make(map[[2]int]int),
		solid: make(map[blockKey]*voxfolio.Node),
	}
	for x := -Size; x <= Size; x++ {
		for z := -Size; z <= Size; z++ {
			fx, fz := float64(x), float64(z)
			y, river := columnHeight(fx, fz)
			c := Cell{X: x, Z: z, Height: y}

			if y >= WaterLevel && !river {
				top := int(y)
				if OnPath(fx, fz) {
					c.Surface = SurfacePath
					t.place(b, "path", colorPath, x, top, z)
				} else {
					c.Surface = SurfaceGrass
					n := t.place(b, "grass", colorGrassSide, x, top, z)
					n.FaceColors = &[6]voxfolio.Color{
						voxfolio.FaceRight:  colorGrassSide,
						voxfolio.FaceLeft:   colorGrassSide,
						voxfolio.FaceTop:    colorGrassTop,
						voxfolio.FaceBottom: colorDirt,
						voxfolio.FaceFront:  colorGrassSide,
						voxfolio.FaceBack:   colorGrassSide,
					}
				}
				c.Blocks++
				for dy := top - 1; dy >= lowestBlock; dy-- {
					t.place(b, "dirt", colorDirt, x, dy, z)
					c.Blocks++
				}
			} else {
				c.Surface = SurfaceRiverbed
				for dy := WaterLevel - 1; float64(dy) >= y-1; dy-- {
					if b.rng.Float64() < 0.8 {
						t.place(b, "sand", colorSand, x, dy, z)
					} else {
						t.place(b, "dirt", colorDirt, x, dy, z)
					}
					c.Blocks++
				}
			}
			t.index[[2]int{x, z}] = len(t.cells)
			t.cells = append(t.cells, c)
		}
	}
	t.hideBuriedFaces()
	return t
}

func (t *Terrain) place(b *builder, name string, c voxfolio.Color, x, y, z int) *voxfolio.Node {
	n := b.cube(TagTerrain, name, c, v(float64(x), float64(y), float64(z)))
	t.solid[blockKey{x, y, z}] = n
	return n
}

var faceNeighbors = [6]blockKey{
	voxfolio.FaceRight:  {1, 0, 0},
	voxfolio.FaceLeft:   {-1, 0, 0},
	voxfolio.FaceTop:    {0, 1, 0},
	voxfolio.FaceBottom: {0, -1, 0},
	voxfolio.FaceFront:  {0, 0, 1},
	voxfolio.FaceBack:   {0, 0, -1},
}

// hideBuriedFaces hides every face that touches another terrain block.
func (t *Terrain) hideBuriedFaces() {
	for k, n := range t.solid {
		for f, d := range faceNeighbors {
			if _, ok := t.solid[blockKey{k.x + d.x, k.y + d.y, k.z + d.z}]; ok {
				n.HideFace(voxfolio.Face(f))
			}
		}
	}
}

// Ground lays a dirt floor at y = -1 over the whole extent. Cells where the
// terrain already has a block at that level are skipped so no two boxes
// share a position. Returns the number of blocks added.
func Ground(scene *voxfolio.Scene, t *Terrain) int {
	added := 0
	for x := -Size; x <= Size; x++ {
		for z := -Size; z <= Size; z++ {
			if t != nil && t.Solid(x, -1, z) {
				continue
			}
			n := voxfolio.NewBox("dirt", colorDirt)
			n.Tag = TagGround
			n.Position = v(float64(x), -1, float64(z))
			scene.Add(n)
			added++
		}
	}
	return added
}

func (t *Terrain) block(x, y, z int) *voxfolio.Node {
	return t.solid[blockKey{x, y, z}]
}

// claim hides the terrain block at (x, y, z) under a structure that fills
// the same cell.
func (t *Terrain) claim(x, y, z int) {
	if n := t.solid[blockKey{x, y, z}]; n != nil {
		n.Visible = false
	}
}
