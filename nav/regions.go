package nav

import (
	"math"

	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/world"
)

// Region maps a box of world space to a section. A point is inside when it
// lies strictly within HalfX and HalfZ of the center and strictly between
// MinY and MaxY.
type Region struct {
	Section      string
	X, Z         float64
	HalfX, HalfZ float64
	MinY, MaxY   float64
}

// Contains reports whether p lies inside r.
func (r Region) Contains(p voxfolio.Vec3) bool {
	return math.Abs(p.X-r.X) < r.HalfX &&
		math.Abs(p.Z-r.Z) < r.HalfZ &&
		p.Y > r.MinY && p.Y < r.MaxY
}

var (
	below = math.Inf(-1)
	above = math.Inf(1)

	cherryZ = world.BridgeZ - world.BridgeLength/2 - 4
)

// Regions resolves clicks to sections. Entries are tried in order and the
// first match wins, so the mailbox shadows the house behind it. Skills has no
// region and is reached from the menu only; a chest click is a background
// click.
var Regions = []Region{
	{Section: "contact", X: -10, Z: 9, HalfX: 2, HalfZ: 2, MinY: below, MaxY: 3},
	{Section: "experience", X: -12.5, Z: 14, HalfX: 4.5, HalfZ: 4.5, MinY: below, MaxY: 9},
	{Section: "projects", X: -2.5, Z: 15, HalfX: 4.5, HalfZ: 4.5, MinY: below, MaxY: 3},
	{Section: "education", X: world.BridgeX, Z: cherryZ, HalfX: 5.5, HalfZ: 5, MinY: 2, MaxY: 12},
	{Section: "summary", X: world.HillX, Z: world.HillZ, HalfX: 3, HalfZ: 3, MinY: 5, MaxY: above},
}

// Hoverable is the looser table that decides whether the pointer cursor is
// shown over an object.
var Hoverable = []Region{
	{Section: "contact", X: -10, Z: 9, HalfX: 2, HalfZ: 2, MinY: below, MaxY: 3},
	{Section: "experience", X: -12.5, Z: 14, HalfX: 5, HalfZ: 6, MinY: below, MaxY: 10},
	{Section: "projects", X: -2.5, Z: 15, HalfX: 5, HalfZ: 5, MinY: below, MaxY: 3},
	{Section: "education", X: world.BridgeX, Z: cherryZ, HalfX: 6, HalfZ: 6, MinY: 2, MaxY: 12},
	{Section: "summary", X: world.HillX, Z: world.HillZ, HalfX: 3, HalfZ: 3, MinY: 5, MaxY: above},
}

// SectionAt returns the section whose region contains p.
func SectionAt(p voxfolio.Vec3) (string, bool) {
	for _, r := range Regions {
		if r.Contains(p) {
			return r.Section, true
		}
	}
	return "", false
}

// SectionFor resolves a hit node by its world position.
func SectionFor(n *voxfolio.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	return SectionAt(n.WorldPosition())
}

// Clickable reports whether the pointer over n should show the hand cursor.
func Clickable(n *voxfolio.Node) bool {
	if n == nil {
		return false
	}
	p := n.WorldPosition()
	for _, r := range Hoverable {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
