package voxfolio

import "math"

// Affine is a 3D affine matrix stored row-major as three rows of four:
//
//	| m0 m1  m2  m3  |
//	| m4 m5  m6  m7  |
//	| m8 m9  m10 m11 |
//	| 0  0   0   1   |
type Affine [12]float64

// identityAffine is the identity affine matrix.
var identityAffine = Affine{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties.
//
// Composition order:
//
//	Scale -> Rotate(X, then Y, then Z as an XYZ Euler) -> Translate(Position)
func computeLocalTransform(n *Node) Affine {
	a, b := math.Cos(n.Rotation.X), math.Sin(n.Rotation.X)
	c, d := math.Cos(n.Rotation.Y), math.Sin(n.Rotation.Y)
	e, f := math.Cos(n.Rotation.Z), math.Sin(n.Rotation.Z)

	ae, af, be, bf := a*e, a*f, b*e, b*f

	sx, sy, sz := n.Scale.X, n.Scale.Y, n.Scale.Z

	return Affine{
		c * e * sx, -c * f * sy, d * sz, n.Position.X,
		(af + be*d) * sx, (ae - bf*d) * sy, -b * c * sz, n.Position.Y,
		(bf - ae*d) * sx, (be + af*d) * sy, a * c * sz, n.Position.Z,
	}
}

// multiplyAffine multiplies two affine matrices: result = parent * child.
func multiplyAffine(p, c Affine) Affine {
	var r Affine
	for row := 0; row < 3; row++ {
		p0, p1, p2, p3 := p[row*4], p[row*4+1], p[row*4+2], p[row*4+3]
		r[row*4] = p0*c[0] + p1*c[4] + p2*c[8]
		r[row*4+1] = p0*c[1] + p1*c[5] + p2*c[9]
		r[row*4+2] = p0*c[2] + p1*c[6] + p2*c[10]
		r[row*4+3] = p0*c[3] + p1*c[7] + p2*c[11] + p3
	}
	return r
}

// invertAffine computes the inverse of an affine matrix.
// Returns the identity matrix if the matrix is singular (determinant near 0).
func invertAffine(m Affine) Affine {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[4], m[5], m[6]
	g, h, i := m[8], m[9], m[10]

	co0 := e*i - f*h
	co1 := f*g - d*i
	co2 := d*h - e*g
	det := a*co0 + b*co1 + c*co2
	if det > -1e-12 && det < 1e-12 {
		return identityAffine
	}
	inv := 1 / det

	r := Affine{
		co0 * inv, (c*h - b*i) * inv, (b*f - c*e) * inv, 0,
		co1 * inv, (a*i - c*g) * inv, (c*d - a*f) * inv, 0,
		co2 * inv, (b*g - a*h) * inv, (a*e - b*d) * inv, 0,
	}
	tx, ty, tz := m[3], m[7], m[11]
	r[3] = -(r[0]*tx + r[1]*ty + r[2]*tz)
	r[7] = -(r[4]*tx + r[5]*ty + r[6]*tz)
	r[11] = -(r[8]*tx + r[9]*ty + r[10]*tz)
	return r
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m Affine, p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// transformDir applies the linear part of an affine matrix to a direction.
func transformDir(m Affine, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform Affine, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
	n.transformDirty = true
}

// SetScale sets the node's per-axis scale and marks it dirty.
func (n *Node) SetScale(sx, sy, sz float64) {
	n.Scale = Vec3{sx, sy, sz}
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians, XYZ order) and marks
// it dirty.
func (n *Node) SetRotation(rx, ry, rz float64) {
	n.Rotation = Vec3{rx, ry, rz}
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p Vec3) Vec3 {
	return transformPoint(invertAffine(n.worldTransform), p)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return transformPoint(n.worldTransform, p)
}

// WorldPosition returns the node's origin in world space as of the last
// transform update.
func (n *Node) WorldPosition() Vec3 {
	return Vec3{n.worldTransform[3], n.worldTransform[7], n.worldTransform[11]}
}

// WorldTransform returns the node's cached world matrix.
func (n *Node) WorldTransform() Affine {
	return n.worldTransform
}

// UpdateTransforms refreshes the world transform of n and its subtree,
// treating n's parent chain as already current.
func (n *Node) UpdateTransforms() {
	parent := identityAffine
	alpha := 1.0
	if n.Parent != nil {
		parent = n.Parent.worldTransform
		alpha = n.Parent.worldAlpha
	}
	updateWorldTransform(n, parent, alpha, true)
}
