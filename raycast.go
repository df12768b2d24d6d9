package voxfolio

import (
	"cmp"
	"math"
	"slices"
)

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit is a single ray intersection. Node is the box or plane that was hit,
// which may be a descendant of a tracked object.
type Hit struct {
	Node     *Node
	Distance float64
	Point    Vec3
}

// Raycast intersects ray with every visible, interactable box and plane in
// the object registry (descending into groups) and returns the hits ordered
// nearest first. Equal distances keep registry order.
func (s *Scene) Raycast(ray Ray) []Hit {
	s.refreshTransforms()
	s.hitBuf = s.hitBuf[:0]
	for _, obj := range s.objects {
		s.hitBuf = raycastNode(obj, ray, s.hitBuf)
	}
	slices.SortStableFunc(s.hitBuf, func(a, b Hit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	out := make([]Hit, len(s.hitBuf))
	copy(out, s.hitBuf)
	return out
}

// Pick returns the nearest hit under the given screen point, or false when
// the ray hits nothing.
func (s *Scene) Pick(sx, sy float64) (Hit, bool) {
	hits := s.Raycast(s.camera.ScreenRay(sx, sy))
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

func raycastNode(n *Node, ray Ray, buf []Hit) []Hit {
	if n.disposed || !n.Visible || !n.Interactable {
		return buf
	}
	if n.Type != NodeTypeGroup {
		if t, ok := intersectNode(n, ray); ok {
			buf = append(buf, Hit{Node: n, Distance: t, Point: ray.At(t)})
		}
	}
	for _, child := range n.children {
		buf = raycastNode(child, ray, buf)
	}
	return buf
}

// intersectNode tests ray against the node's unit shape in local space.
// The local direction is left unnormalized so the returned parameter is the
// world-space distance along ray.
func intersectNode(n *Node, ray Ray) (float64, bool) {
	inv := invertAffine(n.worldTransform)
	o := transformPoint(inv, ray.Origin)
	d := transformDir(inv, ray.Dir)

	switch n.Type {
	case NodeTypeBox:
		return intersectUnitBox(o, d)
	case NodeTypePlane:
		if math.Abs(d.Y) < 1e-12 {
			return 0, false
		}
		t := -o.Y / d.Y
		if t < 0 {
			return 0, false
		}
		p := o.Add(d.Mul(t))
		if math.Abs(p.X) > 0.5 || math.Abs(p.Z) > 0.5 {
			return 0, false
		}
		return t, true
	}
	return 0, false
}

// intersectUnitBox is the slab test against the cube [-0.5, 0.5]^3.
func intersectUnitBox(o, d Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		var oa, da float64
		switch axis {
		case 0:
			oa, da = o.X, d.X
		case 1:
			oa, da = o.Y, d.Y
		default:
			oa, da = o.Z, d.Z
		}
		if math.Abs(da) < 1e-12 {
			if oa < -0.5 || oa > 0.5 {
				return 0, false
			}
			continue
		}
		t1 := (-0.5 - oa) / da
		t2 := (0.5 - oa) / da
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 {
		// Behind the origin, or the origin is inside the box. Only front
		// faces are hit.
		return 0, false
	}
	return tmin, true
}
