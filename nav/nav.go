// Package nav drives the camera between the map's sections.
//
// A Controller owns the camera while a flight or orbit is running. Clicking
// an object inside one of the Regions, or calling Activate from a menu,
// flies the camera to that section's viewpoint, then circles the section's
// target and shows its content. A click on the background flies back Home
// unless the user has moved the camera since the section was entered.
package nav

import (
	"log/slog"

	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/content"
	"github.com/tanema/gween/ease"
)

// State is the controller's navigation state.
type State uint8

const (
	Idle          State = iota // at rest, controls free
	Transitioning              // flying toward a section or Home
	SectionActive              // orbiting a section with its panel shown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	case SectionActive:
		return "section-active"
	default:
		return "unknown"
	}
}

// Panel displays section content.
type Panel interface {
	Show(sec content.Section)
	Hide()
}

// ContentSource looks up section content by id.
type ContentSource interface {
	Lookup(id string) (content.Section, bool)
}

// Controller is the navigation state machine. It is driven from the game
// loop and is not safe for concurrent use.
type Controller struct {
	camera   *voxfolio.Camera
	controls *voxfolio.OrbitControls
	content  ContentSource
	panel    Panel
	sink     Sink

	state   State
	current string
	// viewing is set when a section is entered and cleared by any
	// background click.
	viewing bool
	// userMoved is set by user driven control changes since the last entry.
	userMoved bool

	camTween    *voxfolio.TweenGroup
	targetTween *voxfolio.TweenGroup
	orbit       *orbit

	handles []voxfolio.CallbackHandle
	change  voxfolio.ChangeHandle
}

// New creates a controller for scene, puts the camera at Home and listens
// for clicks and control changes.
func New(scene *voxfolio.Scene, src ContentSource, panel Panel) *Controller {
	c := &Controller{
		camera:   scene.Camera(),
		controls: scene.Controls(),
		content:  src,
		panel:    panel,
	}
	c.camera.Position = Home.Position
	c.camera.LookAt(Home.Target)
	c.controls.Distance = FreeRange

	c.handles = append(c.handles, scene.OnClick(func(ctx voxfolio.ClickContext) {
		c.Click(ctx.Node)
	}))
	c.change = c.controls.OnChange(c.handleChange)
	return c
}

// Close stops listening to the scene.
func (c *Controller) Close() {
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	c.change.Remove()
}

// SetSink sets where navigation events are published. Nil disables
// publishing.
func (c *Controller) SetSink(s Sink) {
	c.sink = s
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Current returns the section being flown to or shown, or "" when heading
// Home or idle.
func (c *Controller) Current() string { return c.current }

// Viewing reports whether a section was entered and not yet dismissed by a
// background click.
func (c *Controller) Viewing() bool { return c.viewing }

// UserMoved reports whether the user moved the camera since the last
// section entry.
func (c *Controller) UserMoved() bool { return c.userMoved }

// Orbiting reports whether the circular orbit is running, and around which
// target.
func (c *Controller) Orbiting() (voxfolio.Vec3, bool) {
	if c.orbit == nil {
		return voxfolio.Vec3{}, false
	}
	return c.orbit.target, true
}

// Activate flies to the section with the given id. Returns false for
// unknown ids.
func (c *Controller) Activate(id string) bool {
	sec, ok := LookupSection(id)
	if !ok {
		slog.Debug("unknown section", "component", "nav", "id", id)
		return false
	}
	c.leave()
	c.panel.Hide()
	c.controls.Distance = SectionRange
	c.controls.Enabled = true
	c.viewing = true
	c.userMoved = false

	c.fly(Pose{Position: sec.Position, Target: sec.Target}, sec.Duration)
	c.current = sec.ID
	slog.Debug("section activated", "component", "nav", "id", sec.ID)
	return true
}

// Click handles a click on n, or on nothing when n is nil. Clicks on
// objects inside a region activate that section; every other click counts
// as a background click.
func (c *Controller) Click(n *voxfolio.Node) {
	if id, ok := SectionFor(n); ok {
		c.Activate(id)
		return
	}
	c.Background()
}

// Background handles a click that hit no section. The camera returns Home
// only when a section is being viewed and the user has not moved the
// camera since.
func (c *Controller) Background() {
	if c.viewing && !c.userMoved {
		c.Reset()
	}
	c.viewing = false
}

// Reset hides the panel and flies back Home with the free-roam limits.
func (c *Controller) Reset() {
	c.leave()
	c.panel.Hide()
	c.controls.Distance = FreeRange
	c.controls.Enabled = true
	c.current = ""
	c.fly(Home, ResetDuration)
	c.publish(Event{Kind: EventReset})
	slog.Debug("view reset", "component", "nav")
}

// Update advances the flight or orbit by dt seconds.
func (c *Controller) Update(dt float64) {
	switch c.state {
	case Transitioning:
		c.camTween.Update(float32(dt))
		c.targetTween.Update(float32(dt))
		c.controls.SystemMoved()
		if c.camTween.Done && c.targetTween.Done {
			c.arrive()
		}
	case SectionActive:
		if c.orbit != nil {
			c.orbit.step(c.camera, dt)
			c.controls.SystemMoved()
		}
	}
}

// fly cancels any running motion and starts tweens toward p.
func (c *Controller) fly(p Pose, seconds float64) {
	c.cancel()
	c.controls.Stop()
	d := float32(seconds)
	c.camTween = voxfolio.TweenVec3(&c.camera.Position, p.Position, d, ease.InOutQuad)
	c.targetTween = voxfolio.TweenVec3(&c.camera.Target, p.Target, d, ease.InOutQuad)
	c.state = Transitioning
}

// cancel stops the flight tweens and the orbit.
func (c *Controller) cancel() {
	if c.camTween != nil {
		c.camTween.Cancel()
		c.targetTween.Cancel()
		c.camTween, c.targetTween = nil, nil
	}
	c.orbit = nil
}

// leave publishes EventLeft for the section being shown or flown to.
func (c *Controller) leave() {
	if c.current != "" {
		c.publish(Event{Kind: EventLeft, Section: c.current})
	}
}

func (c *Controller) arrive() {
	c.camTween, c.targetTween = nil, nil
	if c.current == "" {
		c.state = Idle
		return
	}
	sec, _ := LookupSection(c.current)
	c.orbit = &orbit{target: sec.Target}
	c.state = SectionActive

	if body, ok := c.content.Lookup(sec.ID); ok {
		c.panel.Show(body)
	} else {
		slog.Warn("no content for section", "component", "nav", "id", sec.ID)
	}
	c.publish(Event{Kind: EventEntered, Section: sec.ID})
}

func (c *Controller) handleChange(src voxfolio.ChangeSource) {
	if src != voxfolio.ChangeUser {
		return
	}
	c.userMoved = true
	if c.orbit != nil {
		c.orbit = nil
		slog.Debug("orbit stopped by user", "component", "nav", "id", c.current)
	}
}

func (c *Controller) publish(e Event) {
	if c.sink != nil {
		c.sink.Publish(e)
	}
}
