package nav

import (
	"math"
	"testing"

	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/world"
)

func TestSectionAt(t *testing.T) {
	tests := []struct {
		name string
		p    voxfolio.Vec3
		want string
	}{
		{"mailbox", voxfolio.Vec3{X: -10, Y: 1.5, Z: 9}, "contact"},
		{"house corner", voxfolio.Vec3{X: -15, Z: 11}, "experience"},
		{"chimney", voxfolio.Vec3{X: -11, Y: 6, Z: 13}, "experience"},
		{"garden", voxfolio.Vec3{X: -5, Z: 12}, "projects"},
		{"cherry trunk", voxfolio.Vec3{X: world.BridgeX, Y: 3, Z: cherryZ}, "education"},
		{"rabbit", voxfolio.Vec3{X: world.HillX, Y: 6.65, Z: world.HillZ}, "summary"},
		{"chest", voxfolio.Vec3{X: world.ChestX, Y: 0.75, Z: world.ChestZ}, ""},
		{"bridge post", voxfolio.Vec3{X: world.BridgeX + 1.2, Y: 1.1, Z: world.BridgeZ - 4}, ""},
		{"open field", voxfolio.Vec3{X: 5, Z: -2}, ""},
		{"hill slope", voxfolio.Vec3{X: world.HillX, Y: 3, Z: world.HillZ - 5}, ""},
	}
	for _, tt := range tests {
		got, ok := SectionAt(tt.p)
		if got != tt.want || ok != (tt.want != "") {
			t.Errorf("%s: SectionAt(%v) = %q, %v, want %q", tt.name, tt.p, got, ok, tt.want)
		}
	}
}

func TestRegionsCoverSections(t *testing.T) {
	for _, sec := range Sections {
		if sec.ID == "skills" {
			continue
		}
		found := false
		for _, r := range Regions {
			if r.Section == sec.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("no region for %q", sec.ID)
		}
	}
	for _, r := range Regions {
		if r.Section == "skills" {
			t.Error("skills should be reachable from the menu only")
		}
	}
}

func TestHoverableIsLooser(t *testing.T) {
	for i, r := range Regions {
		h := Hoverable[i]
		if h.Section != r.Section {
			t.Fatalf("Hoverable[%d] = %q, want %q", i, h.Section, r.Section)
		}
		if h.HalfX < r.HalfX || h.HalfZ < r.HalfZ || h.MaxY < r.MaxY || h.MinY > r.MinY {
			t.Errorf("hover region for %q is tighter than its click region", r.Section)
		}
	}
}

func TestClickable(t *testing.T) {
	at := func(p voxfolio.Vec3) *voxfolio.Node {
		n := voxfolio.NewBox("marker", voxfolio.ColorWhite)
		n.Position = p
		n.UpdateTransforms()
		return n
	}
	edge := at(voxfolio.Vec3{X: -17.2, Y: 2, Z: 14})
	if _, ok := SectionFor(edge); ok {
		t.Error("house edge should not resolve to a section")
	}
	if !Clickable(edge) {
		t.Error("house edge should show the pointer")
	}
	if Clickable(at(voxfolio.Vec3{X: 5, Z: -2})) {
		t.Error("open field should not show the pointer")
	}
	if Clickable(nil) {
		t.Error("Clickable(nil) = true")
	}
	if _, ok := SectionFor(nil); ok {
		t.Error("SectionFor(nil) resolved")
	}
}

func TestLookupSection(t *testing.T) {
	sec, ok := LookupSection("contact")
	if !ok || sec.Duration != 1.5 {
		t.Errorf("LookupSection(contact) = %+v, %v", sec, ok)
	}
	if _, ok := LookupSection("nope"); ok {
		t.Error("LookupSection(nope) found")
	}
	if len(Sections) != 6 {
		t.Errorf("sections = %d, want 6", len(Sections))
	}
}

func TestOrbitPoint(t *testing.T) {
	target := voxfolio.Vec3{X: 1, Y: 2, Z: 3}
	p := OrbitPoint(target, 0)
	s := OrbitRadius * math.Sqrt2 / 2
	want := voxfolio.Vec3{X: 1 + s, Y: 2 + 5 - 0.3, Z: 3 - s}
	if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 || math.Abs(p.Z-want.Z) > 1e-9 {
		t.Errorf("OrbitPoint(0) = %v, want %v", p, want)
	}
	q := OrbitPoint(target, OrbitPeriod+4)
	r := OrbitPoint(target, 4)
	if q.Dist(r) > 1e-9 {
		t.Errorf("orbit not periodic: %v vs %v", q, r)
	}
}
