package voxfolio

import "math"

// faceCommand is a single projected, shaded quad emitted during traversal.
type faceCommand struct {
	pts       [4][2]float32 // screen-space corners
	color     Color         // shaded, fogged, straight alpha
	depth     float64       // squared eye distance to the face center
	treeOrder int           // assigned during traversal for stable sort
}

// boxFace describes one face of the unit cube: its outward normal and its
// corners as a loop.
type boxFace struct {
	normal  Vec3
	corners [4]Vec3
}

// unitBoxFaces are indexed by Face.
var unitBoxFaces = [6]boxFace{
	FaceRight:  {Vec3{1, 0, 0}, [4]Vec3{{.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}, {.5, -.5, .5}}},
	FaceLeft:   {Vec3{-1, 0, 0}, [4]Vec3{{-.5, -.5, -.5}, {-.5, .5, -.5}, {-.5, .5, .5}, {-.5, -.5, .5}}},
	FaceTop:    {Vec3{0, 1, 0}, [4]Vec3{{-.5, .5, -.5}, {.5, .5, -.5}, {.5, .5, .5}, {-.5, .5, .5}}},
	FaceBottom: {Vec3{0, -1, 0}, [4]Vec3{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}},
	FaceFront:  {Vec3{0, 0, 1}, [4]Vec3{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}},
	FaceBack:   {Vec3{0, 0, -1}, [4]Vec3{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, .5, -.5}, {-.5, .5, -.5}}},
}

// unitPlane is the single face of a plane node. Planes are drawn from both
// sides.
var unitPlane = boxFace{Vec3{0, 1, 0}, [4]Vec3{{-.5, 0, -.5}, {.5, 0, -.5}, {.5, 0, .5}, {-.5, 0, .5}}}

// collectFaces walks the node tree depth-first and appends a faceCommand for
// every visible face of every visible box and plane. Returns the number of
// faces culled.
func (s *Scene) collectFaces(root *Node) int {
	treeOrder := 0
	culled := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if !n.Visible {
			return
		}
		switch n.Type {
		case NodeTypeBox:
			for f := Face(0); f < 6; f++ {
				if n.HiddenFaces&(1<<f) != 0 {
					continue
				}
				if !s.emitFace(n, &unitBoxFaces[f], n.FaceColor(f), false, &treeOrder) {
					culled++
				}
			}
		case NodeTypePlane:
			if !s.emitFace(n, &unitPlane, n.Color, true, &treeOrder) {
				culled++
			}
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(root)
	return culled
}

// emitFace transforms, culls, shades and projects a single face. Returns
// false if the face was culled.
func (s *Scene) emitFace(n *Node, bf *boxFace, base Color, twoSided bool, treeOrder *int) bool {
	alpha := base.A * n.worldAlpha
	if alpha <= 0 {
		return false
	}
	cam := s.camera
	m := n.worldTransform

	var world [4]Vec3
	var center Vec3
	for i, c := range bf.corners {
		world[i] = transformPoint(m, c)
		center = center.Add(world[i])
	}
	center = center.Mul(0.25)

	// The outward direction of a face is the transformed normal offset,
	// which stays perpendicular for rotation and axis scale.
	normal := transformDir(m, bf.normal).Normalize()
	toEye := cam.Position.Sub(center)
	facing := normal.Dot(toEye)
	if facing <= 0 {
		if !twoSided {
			return false
		}
		normal = normal.Mul(-1)
	}

	var pts [4][2]float32
	var minX, minY, maxX, maxY = math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for i, w := range world {
		pc := cam.ToCameraSpace(w)
		if -pc.Z < cam.Near || -pc.Z > cam.Far {
			return false
		}
		sx, sy, _ := cam.projectCamera(pc)
		pts[i] = [2]float32{float32(sx), float32(sy)}
		minX, maxX = math.Min(minX, sx), math.Max(maxX, sx)
		minY, maxY = math.Min(minY, sy), math.Max(maxY, sy)
	}
	vp := cam.Viewport
	if maxX < vp.X || minX > vp.X+vp.Width || maxY < vp.Y || minY > vp.Y+vp.Height {
		return false
	}

	col := base
	if !n.Unlit {
		col = col.Scale(s.Light.Ambient + s.Light.Sun*math.Max(0, normal.Dot(s.Light.SunDir)))
	}
	if s.Fog.Enabled && s.Fog.Far > s.Fog.Near {
		d := -cam.ToCameraSpace(center).Z
		f := clamp01((d - s.Fog.Near) / (s.Fog.Far - s.Fog.Near))
		col = Color{clamp01(col.R), clamp01(col.G), clamp01(col.B), col.A}.Lerp(s.Fog.Color, f)
	}
	col.A = alpha

	*treeOrder++
	s.faces = append(s.faces, faceCommand{
		pts:       pts,
		color:     col,
		depth:     toEye.Dot(toEye),
		treeOrder: *treeOrder,
	})
	return true
}

// --- Merge sort ---

// faceLessOrEqual returns true if a should be drawn before or at the same
// position as b: farther faces first. Using <= for treeOrder ensures
// stability.
func faceLessOrEqual(a, b *faceCommand) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.faces in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.faces)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]faceCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.faces
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.faces, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []faceCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if faceLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
