package voxfolio

import "math"

// ChangeSource tells orbit change listeners who moved the camera.
type ChangeSource uint8

const (
	ChangeUser   ChangeSource = iota // drag, pan or wheel input
	ChangeSystem                     // programmatic movement (tweens, scripted orbits)
)

// String returns the source name.
func (s ChangeSource) String() string {
	if s == ChangeUser {
		return "user"
	}
	return "system"
}

// orbitEpsilon is the delta magnitude below which damped motion stops.
const orbitEpsilon = 1e-6

type changeListener struct {
	id uint32
	fn func(ChangeSource)
}

// OrbitControls rotates, zooms and pans a Camera around its Target in
// response to pointer input. Input is accumulated as deltas and applied in
// Update, optionally with exponential damping.
type OrbitControls struct {
	Camera *Camera
	// Enabled gates all user input.
	Enabled bool
	// Distance bounds the eye-to-target distance. Applied only when user
	// input moves the camera.
	Distance Range
	// MinPolarAngle and MaxPolarAngle bound the angle from straight up, in
	// radians.
	MinPolarAngle float64
	MaxPolarAngle float64
	// DampingFactor in (0, 1] is the fraction of pending motion applied per
	// Update. Zero applies input immediately.
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	PanSpeed      float64

	thetaDelta float64
	phiDelta   float64
	zoomScale  float64
	panDelta   Vec3

	listeners []changeListener
	nextID    uint32
}

// NewOrbitControls creates controls for cam with free limits and no damping.
func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		Enabled:       true,
		Distance:      Range{Min: 0, Max: math.Inf(1)},
		MaxPolarAngle: math.Pi,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		zoomScale:     1,
	}
}

// ChangeHandle allows removing a registered change listener.
type ChangeHandle struct {
	id uint32
	c  *OrbitControls
}

// Remove unregisters the listener so it no longer fires.
func (h ChangeHandle) Remove() {
	if h.c == nil {
		return
	}
	for i := range h.c.listeners {
		if h.c.listeners[i].id == h.id {
			copy(h.c.listeners[i:], h.c.listeners[i+1:])
			h.c.listeners[len(h.c.listeners)-1] = changeListener{}
			h.c.listeners = h.c.listeners[:len(h.c.listeners)-1]
			return
		}
	}
}

// OnChange registers fn to be called whenever the controls move the camera
// or are told the camera was moved programmatically.
func (c *OrbitControls) OnChange(fn func(ChangeSource)) ChangeHandle {
	c.nextID++
	c.listeners = append(c.listeners, changeListener{id: c.nextID, fn: fn})
	return ChangeHandle{id: c.nextID, c: c}
}

func (c *OrbitControls) emit(src ChangeSource) {
	for _, l := range c.listeners {
		l.fn(src)
	}
}

// Rotate queues an orbit by a pointer movement of (dx, dy) pixels.
func (c *OrbitControls) Rotate(dx, dy float64) {
	if !c.Enabled {
		return
	}
	h := c.Camera.Viewport.Height
	if h <= 0 {
		h = 1
	}
	c.thetaDelta -= 2 * math.Pi * dx / h * c.RotateSpeed
	c.phiDelta -= 2 * math.Pi * dy / h * c.RotateSpeed
}

// Zoom queues a dolly from wheel input. Positive steps move the camera
// closer to its target.
func (c *OrbitControls) Zoom(steps float64) {
	if !c.Enabled || steps == 0 {
		return
	}
	c.zoomScale *= math.Pow(0.95, steps*c.ZoomSpeed)
}

// Pan queues a translation of camera and target by a pointer movement of
// (dx, dy) pixels in the view plane.
func (c *OrbitControls) Pan(dx, dy float64) {
	if !c.Enabled {
		return
	}
	cam := c.Camera
	h := cam.Viewport.Height
	if h <= 0 {
		h = 1
	}
	right, up, _ := cam.Basis()
	k := 2 * cam.Distance() * math.Tan(cam.FOV*math.Pi/360) / h * c.PanSpeed
	c.panDelta = c.panDelta.Add(right.Mul(-dx * k)).Add(up.Mul(dy * k))
}

// Stop discards any pending or damped motion.
func (c *OrbitControls) Stop() {
	c.thetaDelta = 0
	c.phiDelta = 0
	c.zoomScale = 1
	c.panDelta = Vec3{}
}

// Moving reports whether queued or damped motion is still pending.
func (c *OrbitControls) Moving() bool {
	return math.Abs(c.thetaDelta) > orbitEpsilon ||
		math.Abs(c.phiDelta) > orbitEpsilon ||
		math.Abs(c.zoomScale-1) > orbitEpsilon ||
		c.panDelta.Len() > orbitEpsilon
}

// SystemMoved tells listeners the camera was repositioned by code rather
// than user input.
func (c *OrbitControls) SystemMoved() {
	c.emit(ChangeSystem)
}

// Update applies pending motion to the camera and notifies listeners with
// ChangeUser. No-op when nothing is pending.
func (c *OrbitControls) Update() {
	if !c.Moving() {
		c.Stop()
		return
	}
	cam := c.Camera

	f := 1.0
	if c.DampingFactor > 0 {
		f = c.DampingFactor
	}

	offset := cam.Position.Sub(cam.Target)
	radius := offset.Len()
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))
	}

	theta += c.thetaDelta * f
	phi += c.phiDelta * f
	const eps = 1e-6
	phi = math.Max(c.MinPolarAngle, math.Min(c.MaxPolarAngle, phi))
	phi = math.Max(eps, math.Min(math.Pi-eps, phi))

	radius *= c.zoomScale
	radius = c.Distance.Clamp(radius)

	cam.Target = cam.Target.Add(c.panDelta.Mul(f))

	sinPhi := math.Sin(phi)
	cam.Position = cam.Target.Add(Vec3{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	})

	if c.DampingFactor > 0 {
		c.thetaDelta *= 1 - f
		c.phiDelta *= 1 - f
		c.panDelta = c.panDelta.Mul(1 - f)
	} else {
		c.thetaDelta = 0
		c.phiDelta = 0
		c.panDelta = Vec3{}
	}
	c.zoomScale = 1

	c.emit(ChangeUser)
}
