package nav

import (
	"math"

	"github.com/phanxgames/voxfolio"
)

// Circular orbit around an active section's target.
const (
	OrbitRadius = 8
	// OrbitPeriod is the time for one full revolution, in seconds.
	OrbitPeriod = 15
	orbitPhase  = math.Pi * 1.75
	orbitLift   = 5
	orbitWobble = 0.3
)

// orbit circles the camera around a fixed target.
type orbit struct {
	target  voxfolio.Vec3
	elapsed float64
}

// OrbitPoint returns the camera position t seconds into an orbit around
// target.
func OrbitPoint(target voxfolio.Vec3, t float64) voxfolio.Vec3 {
	progress := math.Mod(t, OrbitPeriod) / OrbitPeriod
	angle := progress*2*math.Pi + orbitPhase
	return voxfolio.Vec3{
		X: target.X + math.Cos(angle)*OrbitRadius,
		Y: target.Y + orbitLift + math.Sin(angle*2)*orbitWobble,
		Z: target.Z + math.Sin(angle)*OrbitRadius,
	}
}

func (o *orbit) step(cam *voxfolio.Camera, dt float64) {
	o.elapsed += dt
	cam.Position = OrbitPoint(o.target, o.elapsed)
	cam.LookAt(o.target)
}
