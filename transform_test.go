package voxfolio

import (
	"math"
	"testing"
)

func assertAffine(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewGroup("test")
	assertAffine(t, "identity", computeLocalTransform(n), identityAffine)
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewGroup("test")
	n.SetPosition(10, 20, -5)
	got := computeLocalTransform(n)
	assertAffine(t, "translation", got, Affine{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, -5,
	})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewGroup("test")
	n.SetScale(2, 3, 4)
	got := computeLocalTransform(n)
	assertAffine(t, "scale", got, Affine{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
	})
}

func TestLocalTransformRotationY90(t *testing.T) {
	n := NewGroup("test")
	n.SetRotation(0, math.Pi/2, 0)
	got := transformPoint(computeLocalTransform(n), Vec3{1, 0, 0})
	assertVec(t, "rotY(+x)", got, Vec3{0, 0, -1})
}

func TestLocalTransformRotationX90(t *testing.T) {
	n := NewGroup("test")
	n.SetRotation(math.Pi/2, 0, 0)
	got := transformPoint(computeLocalTransform(n), Vec3{0, 1, 0})
	assertVec(t, "rotX(+y)", got, Vec3{0, 0, 1})
}

func TestLocalTransformRotationZ90(t *testing.T) {
	n := NewGroup("test")
	n.SetRotation(0, 0, math.Pi/2)
	got := transformPoint(computeLocalTransform(n), Vec3{1, 0, 0})
	assertVec(t, "rotZ(+x)", got, Vec3{0, 1, 0})
}

func TestLocalTransformScaleBeforeRotate(t *testing.T) {
	n := NewGroup("test")
	n.SetScale(2, 1, 1)
	n.SetRotation(0, 0, math.Pi/2)
	n.SetPosition(5, 0, 0)
	got := transformPoint(computeLocalTransform(n), Vec3{1, 0, 0})
	assertVec(t, "SRT", got, Vec3{5, 2, 0})
}

// --- multiply / invert ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := Affine{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 11}
	assertAffine(t, "I*m", multiplyAffine(identityAffine, m), m)
	assertAffine(t, "m*I", multiplyAffine(m, identityAffine), m)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	n := NewGroup("test")
	n.SetPosition(3, -2, 7)
	n.SetRotation(0.3, 1.1, -0.4)
	n.SetScale(2, 0.5, 3)
	m := computeLocalTransform(n)
	assertAffine(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityAffine)
}

func TestInvertAffineSingular(t *testing.T) {
	var m Affine
	assertAffine(t, "singular", invertAffine(m), identityAffine)
}

// --- updateWorldTransform ---

func TestWorldTransformInheritsParent(t *testing.T) {
	root := NewGroup("root")
	parent := NewGroup("parent")
	child := NewBox("child", ColorWhite)
	root.AddChild(parent)
	parent.AddChild(child)

	parent.SetPosition(10, 0, 0)
	parent.SetRotation(0, math.Pi/2, 0)
	child.SetPosition(1, 0, 0)
	updateWorldTransform(root, identityAffine, 1, false)

	assertVec(t, "child world", child.WorldPosition(), Vec3{10, 0, -1})
}

func TestWorldAlphaMultiplies(t *testing.T) {
	root := NewGroup("root")
	parent := NewGroup("parent")
	child := NewBox("child", ColorWhite)
	root.AddChild(parent)
	parent.AddChild(child)
	parent.SetAlpha(0.5)
	child.SetAlpha(0.5)
	updateWorldTransform(root, identityAffine, 1, false)
	assertNear(t, "worldAlpha", child.worldAlpha, 0.25)
}

func TestWorldTransformCleanSubtreeSkipped(t *testing.T) {
	root := NewGroup("root")
	child := NewBox("child", ColorWhite)
	root.AddChild(child)
	updateWorldTransform(root, identityAffine, 1, false)

	// Mutating the field without marking dirty leaves the cache untouched.
	child.Position.X = 99
	updateWorldTransform(root, identityAffine, 1, false)
	assertNear(t, "cached x", child.WorldPosition().X, 0)

	child.MarkDirty()
	updateWorldTransform(root, identityAffine, 1, false)
	assertNear(t, "refreshed x", child.WorldPosition().X, 99)
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	n := NewBox("b", ColorWhite)
	n.SetPosition(4, 5, 6)
	n.SetRotation(0, 0.7, 0)
	n.SetScale(2, 2, 2)
	n.UpdateTransforms()

	p := Vec3{1, 2, 3}
	assertVec(t, "round trip", n.WorldToLocal(n.LocalToWorld(p)), p)
}
