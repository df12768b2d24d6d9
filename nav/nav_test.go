package nav

import (
	"math"
	"testing"

	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/content"
	"github.com/phanxgames/voxfolio/world"
)

type fakePanel struct {
	shown *content.Section
	hides int
}

func (p *fakePanel) Show(sec content.Section) { p.shown = &sec }
func (p *fakePanel) Hide()                    { p.shown = nil; p.hides++ }

type recorder struct {
	events []Event
}

func (r *recorder) Publish(e Event) { r.events = append(r.events, e) }

func newController(t *testing.T) (*voxfolio.Scene, *Controller, *fakePanel) {
	t.Helper()
	scene := voxfolio.NewScene(800, 600)
	p := &fakePanel{}
	return scene, New(scene, content.Default(), p), p
}

// settle runs the controller until the current flight lands.
func settle(t *testing.T, c *Controller) {
	t.Helper()
	for range 1000 {
		if c.State() != Transitioning {
			return
		}
		c.Update(1.0 / 60)
	}
	t.Fatalf("flight did not land, state = %v", c.State())
}

func assertVec(t *testing.T, name string, got, want voxfolio.Vec3) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNewStartsAtHome(t *testing.T) {
	scene, c, _ := newController(t)
	if c.State() != Idle {
		t.Errorf("State = %v, want idle", c.State())
	}
	assertVec(t, "Position", scene.Camera().Position, Home.Position)
	assertVec(t, "Target", scene.Camera().Target, Home.Target)
	if scene.Controls().Distance != FreeRange {
		t.Errorf("Distance = %v, want %v", scene.Controls().Distance, FreeRange)
	}
}

func TestActivateEverySection(t *testing.T) {
	store := content.Default()
	for _, sec := range Sections {
		t.Run(sec.ID, func(t *testing.T) {
			scene, c, p := newController(t)
			if !c.Activate(sec.ID) {
				t.Fatalf("Activate(%q) = false", sec.ID)
			}
			if c.State() != Transitioning {
				t.Errorf("State = %v, want transitioning", c.State())
			}
			if p.shown != nil {
				t.Error("panel shown before the camera arrived")
			}
			settle(t, c)

			if c.State() != SectionActive {
				t.Fatalf("State = %v, want section-active", c.State())
			}
			assertVec(t, "Position", scene.Camera().Position, sec.Position)
			assertVec(t, "Target", scene.Camera().Target, sec.Target)

			want, _ := store.Lookup(sec.ID)
			if p.shown == nil {
				t.Fatal("panel hidden after arrival")
			}
			if p.shown.ID != sec.ID || p.shown.Title != want.Title || p.shown.HTML != want.HTML {
				t.Errorf("panel shows %q %q, want %q %q", p.shown.ID, p.shown.Title, sec.ID, want.Title)
			}
			if scene.Controls().Distance != SectionRange {
				t.Errorf("Distance = %v, want %v", scene.Controls().Distance, SectionRange)
			}
			target, ok := c.Orbiting()
			if !ok {
				t.Fatal("orbit not running")
			}
			assertVec(t, "orbit target", target, sec.Target)
			if !c.Viewing() || c.UserMoved() {
				t.Errorf("Viewing, UserMoved = %v, %v, want true, false", c.Viewing(), c.UserMoved())
			}
		})
	}
}

func TestOrbitMovesCamera(t *testing.T) {
	scene, c, _ := newController(t)
	c.Activate("summary")
	settle(t, c)
	sec, _ := LookupSection("summary")

	c.Update(1.5)
	cam := scene.Camera()
	assertVec(t, "Position", cam.Position, OrbitPoint(sec.Target, 1.5))
	assertVec(t, "Target", cam.Target, sec.Target)
	dx, dz := cam.Position.X-sec.Target.X, cam.Position.Z-sec.Target.Z
	if r := math.Hypot(dx, dz); math.Abs(r-OrbitRadius) > 1e-9 {
		t.Errorf("orbit radius = %v, want %v", r, OrbitRadius)
	}
	if c.UserMoved() {
		t.Error("orbit motion counted as user movement")
	}
}

func TestContactThenBackgroundReturnsHome(t *testing.T) {
	scene, c, p := newController(t)
	rec := &recorder{}
	c.SetSink(rec)

	c.Activate("contact")
	settle(t, c)
	for range 30 {
		c.Update(0.1)
	}

	c.Click(nil)
	if p.shown != nil {
		t.Error("panel still shown after background click")
	}
	if c.State() != Transitioning {
		t.Fatalf("State = %v, want transitioning", c.State())
	}
	if _, ok := c.Orbiting(); ok {
		t.Error("orbit still running during reset")
	}
	settle(t, c)

	if c.State() != Idle {
		t.Errorf("State = %v, want idle", c.State())
	}
	assertVec(t, "Position", scene.Camera().Position, voxfolio.Vec3{X: 15, Y: 15, Z: 15})
	assertVec(t, "Target", scene.Camera().Target, voxfolio.Vec3{})
	if scene.Controls().Distance != (voxfolio.Range{Min: 5, Max: 30}) {
		t.Errorf("Distance = %v, want {5 30}", scene.Controls().Distance)
	}
	if c.Viewing() {
		t.Error("still viewing after background click")
	}

	want := []Event{
		{Kind: EventEntered, Section: "contact"},
		{Kind: EventLeft, Section: "contact"},
		{Kind: EventReset},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, rec.events[i], want[i])
		}
	}
}

func TestSecondActivationKeepsOneOrbit(t *testing.T) {
	scene, c, p := newController(t)
	rec := &recorder{}
	c.SetSink(rec)

	c.Activate("summary")
	settle(t, c)
	c.Update(1)

	c.Activate("skills")
	if _, ok := c.Orbiting(); ok {
		t.Error("first orbit still running after second activation")
	}
	if p.shown != nil {
		t.Error("first panel still shown during second flight")
	}
	settle(t, c)

	sec, _ := LookupSection("skills")
	target, ok := c.Orbiting()
	if !ok {
		t.Fatal("no orbit after second arrival")
	}
	assertVec(t, "orbit target", target, sec.Target)
	c.Update(2)
	assertVec(t, "Position", scene.Camera().Position, OrbitPoint(sec.Target, 2))

	var entered int
	for _, e := range rec.events {
		if e.Kind == EventEntered {
			entered++
		}
	}
	if entered != 2 || rec.events[1] != (Event{Kind: EventLeft, Section: "summary"}) {
		t.Errorf("events = %v", rec.events)
	}
}

func TestActivateMidFlight(t *testing.T) {
	scene, c, _ := newController(t)
	c.Activate("summary")
	c.Update(0.5)
	c.Activate("contact")
	settle(t, c)

	if c.Current() != "contact" {
		t.Errorf("Current = %q, want contact", c.Current())
	}
	sec, _ := LookupSection("contact")
	assertVec(t, "Position", scene.Camera().Position, sec.Position)
}

func TestManualOrbitSuppressesReset(t *testing.T) {
	scene, c, p := newController(t)
	c.Activate("contact")
	settle(t, c)

	ctrl := scene.Controls()
	ctrl.Rotate(40, 0)
	ctrl.Update()
	if !c.UserMoved() {
		t.Fatal("user rotation not detected")
	}
	if _, ok := c.Orbiting(); ok {
		t.Error("orbit kept running after user drag")
	}
	moved := scene.Camera().Position

	c.Click(nil)
	if c.State() != SectionActive {
		t.Errorf("State = %v, want section-active", c.State())
	}
	if p.shown == nil {
		t.Error("panel hidden without reset")
	}
	c.Update(1)
	assertVec(t, "Position", scene.Camera().Position, moved)
	if c.Viewing() {
		t.Error("background click should clear viewing")
	}

	// A second background click no longer resets either.
	c.Click(nil)
	if c.State() != SectionActive {
		t.Errorf("State after second click = %v, want section-active", c.State())
	}
}

func TestUserMovedClearedOnActivate(t *testing.T) {
	scene, c, _ := newController(t)
	scene.Controls().Rotate(10, 10)
	scene.Controls().Update()
	if !c.UserMoved() {
		t.Fatal("user rotation not detected")
	}
	c.Activate("projects")
	if c.UserMoved() {
		t.Error("UserMoved survived activation")
	}
}

func TestUnknownSection(t *testing.T) {
	scene, c, p := newController(t)
	if c.Activate("hobbies") {
		t.Error("Activate(unknown) = true")
	}
	if c.State() != Idle || p.hides != 0 {
		t.Errorf("State = %v, hides = %d, want idle and untouched", c.State(), p.hides)
	}
	assertVec(t, "Position", scene.Camera().Position, Home.Position)
}

func TestBackgroundWhenIdle(t *testing.T) {
	_, c, _ := newController(t)
	rec := &recorder{}
	c.SetSink(rec)
	c.Click(nil)
	if c.State() != Idle || len(rec.events) != 0 {
		t.Errorf("State = %v, events = %v, want idle and none", c.State(), rec.events)
	}
}

func TestSceneClickActivates(t *testing.T) {
	scene, c, _ := newController(t)
	mailbox := voxfolio.NewBox("mailbox", voxfolio.ColorWhite)
	mailbox.Position = voxfolio.Vec3{X: -10, Y: 1.5, Z: 9}
	scene.Add(mailbox)

	cam := scene.Camera()
	cam.Position = voxfolio.Vec3{X: -10, Y: 6, Z: 14}
	cam.LookAt(mailbox.Position)
	sx, sy, ok := cam.WorldToScreen(mailbox.Position)
	if !ok {
		t.Fatal("mailbox off screen")
	}
	scene.InjectClick(sx, sy)
	for range 2 {
		if err := scene.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if c.Current() != "contact" {
		t.Errorf("Current = %q, want contact", c.Current())
	}
}

func TestCloseStopsListening(t *testing.T) {
	scene, c, _ := newController(t)
	c.Close()
	scene.Controls().Rotate(10, 0)
	scene.Controls().Update()
	if c.UserMoved() {
		t.Error("change observed after Close")
	}
}

func TestRayThroughHouseThenTree(t *testing.T) {
	scene := voxfolio.NewScene(800, 600)
	world.Generate(scene, world.DefaultOptions())
	c := New(scene, content.Default(), &fakePanel{})

	hits := scene.Raycast(voxfolio.Ray{
		Origin: voxfolio.Vec3{X: -7, Y: 1, Z: 13},
		Dir:    voxfolio.Vec3{X: -1},
	})
	if len(hits) == 0 {
		t.Fatal("ray hit nothing")
	}
	if got := hits[0].Node.ResolvedTag(); got != world.TagHouse {
		t.Fatalf("first hit = %q, want %q", got, world.TagHouse)
	}
	tree := false
	for _, h := range hits[1:] {
		if h.Node.ResolvedTag() == world.TagTree {
			tree = true
		}
	}
	if !tree {
		t.Fatal("ray should continue into the tree behind the house")
	}

	c.Click(hits[0].Node)
	if c.Current() != "experience" {
		t.Errorf("Current = %q, want experience", c.Current())
	}
}

// orbitingSummary generates the map, flies to the summary section and lets
// the orbit run for a moment.
func orbitingSummary(t *testing.T) (*voxfolio.Scene, *Controller, *recorder) {
	t.Helper()
	scene := voxfolio.NewScene(800, 600)
	world.Generate(scene, world.DefaultOptions())
	c := New(scene, content.Default(), &fakePanel{})
	t.Cleanup(c.Close)
	rec := &recorder{}
	c.SetSink(rec)

	if !c.Activate("summary") {
		t.Fatal("Activate(summary) = false")
	}
	settle(t, c)
	for range 30 {
		c.Update(1.0 / 60)
	}
	if _, ok := c.Orbiting(); !ok {
		t.Fatal("summary should be orbiting")
	}
	rec.events = nil
	return scene, c, rec
}

// holdClick presses at (sx, sy), keeps the button down for held frames and
// releases, running the scene and the orbit every frame.
func holdClick(t *testing.T, scene *voxfolio.Scene, c *Controller, sx, sy float64, held int) {
	t.Helper()
	scene.InjectPress(sx, sy)
	for range held {
		scene.InjectMove(sx, sy)
	}
	scene.InjectRelease(sx, sy)
	for range held + 2 {
		if err := scene.Update(); err != nil {
			t.Fatal(err)
		}
		c.Update(1.0 / 60)
	}
}

func TestHeldBackgroundClickWhileOrbitingResetsHome(t *testing.T) {
	scene, c, rec := orbitingSummary(t)
	cam := scene.Camera()

	// A hill-top block between the camera and the rabbit, outside the
	// summary region.
	d := voxfolio.Vec3{X: cam.Position.X - world.HillX, Z: cam.Position.Z - world.HillZ}.Normalize()
	ground := voxfolio.Vec3{X: world.HillX + 5*d.X, Y: world.HillTop + 0.5, Z: world.HillZ + 5*d.Z}
	sx, sy, ok := cam.WorldToScreen(ground)
	if !ok {
		t.Fatal("hill top off screen")
	}
	hit, ok := scene.Pick(sx, sy)
	if !ok || SectionFor(hit.Node) != "" {
		t.Fatalf("press point should be plain ground, got %v", hit.Node)
	}

	start := cam.Position
	holdClick(t, scene, c, sx, sy, 6)

	if cam.Position == start {
		t.Fatal("camera should keep moving while the button is held")
	}
	if c.State() != Transitioning || c.Current() != "" || c.Viewing() {
		t.Fatalf("state=%v current=%q viewing=%v, want a flight home", c.State(), c.Current(), c.Viewing())
	}
	if n := len(rec.events); n == 0 || rec.events[n-1].Kind != EventReset {
		t.Errorf("events = %v, want a trailing reset", rec.events)
	}
	settle(t, c)
	assertVec(t, "Position", cam.Position, Home.Position)
	assertVec(t, "Target", cam.Target, Home.Target)
}

func TestHeldClickOnRabbitWhileOrbitingActivates(t *testing.T) {
	scene, c, rec := orbitingSummary(t)
	cam := scene.Camera()

	body := voxfolio.Vec3{X: world.HillX, Y: world.HillTop + 0.65, Z: world.HillZ}
	sx, sy, ok := cam.WorldToScreen(body)
	if !ok {
		t.Fatal("rabbit off screen")
	}
	holdClick(t, scene, c, sx, sy, 6)

	if c.State() != Transitioning || c.Current() != "summary" {
		t.Fatalf("state=%v current=%q, want a flight to summary", c.State(), c.Current())
	}
	if _, ok := c.Orbiting(); ok {
		t.Error("orbit should stop for the new flight")
	}
	if len(rec.events) != 1 || rec.events[0] != (Event{Kind: EventLeft, Section: "summary"}) {
		t.Errorf("events = %v, want [left summary]", rec.events)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "idle"},
		{Transitioning, "transitioning"},
		{SectionActive, "section-active"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestEventKindString(t *testing.T) {
	for k, want := range map[EventKind]string{
		EventEntered: "entered", EventLeft: "left", EventReset: "reset", EventKind(9): "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
