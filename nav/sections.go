package nav

import "github.com/phanxgames/voxfolio"

// Section is a camera viewpoint tied to a content section.
type Section struct {
	ID       string
	Position voxfolio.Vec3
	Target   voxfolio.Vec3
	// Duration of the flight to this viewpoint, in seconds.
	Duration float64
}

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position voxfolio.Vec3
	Target   voxfolio.Vec3
}

// Home is the pose the camera starts in and returns to on reset.
var Home = Pose{
	Position: voxfolio.Vec3{X: 15, Y: 15, Z: 15},
}

// Orbit-control distance limits.
var (
	FreeRange    = voxfolio.Range{Min: 5, Max: 30}
	SectionRange = voxfolio.Range{Min: 5, Max: 15}
)

// ResetDuration is the length of the flight back to Home, in seconds.
const ResetDuration = 2.0

// Sections lists every viewpoint in menu order.
var Sections = []Section{
	{ID: "summary", Position: voxfolio.Vec3{X: 12, Y: 12, Z: 12}, Target: voxfolio.Vec3{X: 15, Y: 6, Z: 15}, Duration: 2},
	{ID: "education", Position: voxfolio.Vec3{X: -12, Y: 8, Z: -8}, Target: voxfolio.Vec3{X: -12, Y: 4, Z: -15}, Duration: 2},
	{ID: "skills", Position: voxfolio.Vec3{X: -3, Y: 8, Z: 8}, Target: voxfolio.Vec3{X: -3, Y: 4, Z: 5}, Duration: 2},
	{ID: "experience", Position: voxfolio.Vec3{X: -8, Y: 10, Z: 14}, Target: voxfolio.Vec3{X: -15, Y: 3, Z: 11}, Duration: 2},
	{ID: "projects", Position: voxfolio.Vec3{X: -2, Y: 8, Z: 14}, Target: voxfolio.Vec3{X: -5, Y: 2, Z: 12}, Duration: 2},
	{ID: "contact", Position: voxfolio.Vec3{X: -12, Y: 5, Z: 6}, Target: voxfolio.Vec3{X: -13, Y: 1, Z: 9}, Duration: 1.5},
}

// LookupSection returns the viewpoint with the given id.
func LookupSection(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
