package voxfolio

import "math"

// Camera is a perspective camera that looks from Position toward Target.
// Camera space follows the usual right-handed convention: +X right, +Y up,
// looking down -Z.
type Camera struct {
	// Position is the world-space eye point.
	Position Vec3
	// Target is the world-space point the camera looks at.
	Target Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far bound the visible depth range.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	right, up, forward Vec3
	focal              float64
	key                cameraKey
	valid              bool
}

// cameraKey is the set of inputs the cached view basis depends on.
type cameraKey struct {
	pos, target Vec3
	fov         float64
	vp          Rect
}

// newCamera creates a Camera with default values and the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		FOV:      75,
		Near:     0.1,
		Far:      1000,
		Viewport: viewport,
		Position: Vec3{0, 0, 10},
	}
}

// LookAt sets the point the camera faces.
func (c *Camera) LookAt(target Vec3) {
	c.Target = target
}

// Resize updates the viewport to cover a w x h screen. The aspect ratio is
// derived from the viewport, so projection follows immediately.
func (c *Camera) Resize(w, h int) {
	c.Viewport = Rect{Width: float64(w), Height: float64(h)}
}

// Aspect returns the viewport's width / height ratio.
func (c *Camera) Aspect() float64 {
	if c.Viewport.Height == 0 {
		return 1
	}
	return c.Viewport.Width / c.Viewport.Height
}

// Distance returns the distance from the eye to the look-at target.
func (c *Camera) Distance() float64 {
	return c.Position.Dist(c.Target)
}

// Basis returns the camera's world-space right, up and forward unit vectors.
func (c *Camera) Basis() (right, up, forward Vec3) {
	c.computeView()
	return c.right, c.up, c.forward
}

// computeView recomputes the cached basis and focal length when any input
// changed since the last call.
func (c *Camera) computeView() {
	k := cameraKey{pos: c.Position, target: c.Target, fov: c.FOV, vp: c.Viewport}
	if c.valid && k == c.key {
		return
	}
	c.key = k
	c.valid = true

	fwd := c.Target.Sub(c.Position).Normalize()
	if fwd == (Vec3{}) {
		fwd = Vec3{0, 0, -1}
	}
	worldUp := Vec3{0, 1, 0}
	right := fwd.Cross(worldUp)
	if right.Len() < 1e-9 {
		// Looking straight up or down.
		right = Vec3{1, 0, 0}
	}
	right = right.Normalize()
	c.forward = fwd
	c.right = right
	c.up = right.Cross(fwd)

	half := c.FOV * math.Pi / 360
	c.focal = (c.Viewport.Height / 2) / math.Tan(half)
}

// ToCameraSpace converts a world point into camera space.
func (c *Camera) ToCameraSpace(p Vec3) Vec3 {
	c.computeView()
	d := p.Sub(c.Position)
	return Vec3{d.Dot(c.right), d.Dot(c.up), -d.Dot(c.forward)}
}

// projectCamera projects a camera-space point onto the screen. depth is the
// positive distance along the view direction.
func (c *Camera) projectCamera(pc Vec3) (sx, sy, depth float64) {
	depth = -pc.Z
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	sx = cx + pc.X*c.focal/depth
	sy = cy - pc.Y*c.focal/depth
	return sx, sy, depth
}

// WorldToScreen projects a world point to screen coordinates. ok is false if
// the point lies outside the Near..Far depth range.
func (c *Camera) WorldToScreen(p Vec3) (sx, sy float64, ok bool) {
	pc := c.ToCameraSpace(p)
	if -pc.Z < c.Near || -pc.Z > c.Far {
		return 0, 0, false
	}
	sx, sy, _ = c.projectCamera(pc)
	return sx, sy, true
}

// ScreenRay returns the world-space ray from the eye through the given
// screen point.
func (c *Camera) ScreenRay(sx, sy float64) Ray {
	c.computeView()
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	dir := c.forward.
		Add(c.right.Mul((sx - cx) / c.focal)).
		Add(c.up.Mul(-(sy - cy) / c.focal))
	return Ray{Origin: c.Position, Dir: dir.Normalize()}
}
