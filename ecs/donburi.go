package ecs

import (
	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/nav"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for scene pointer, click,
// drag and wheel interactions.
var InteractionEventType = events.NewEventType[voxfolio.InteractionEvent]()

// NavigationEventType is the Donburi event type for section entries,
// departures and resets.
var NavigationEventType = events.NewEventType[nav.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are queued on InteractionEventType.
func NewDonburiStore(world donburi.World) voxfolio.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event voxfolio.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

type navSink struct {
	world donburi.World
}

// NewNavSink creates a navigation Sink that queues events on
// NavigationEventType.
func NewNavSink(world donburi.World) nav.Sink {
	return &navSink{world: world}
}

func (s *navSink) Publish(e nav.Event) {
	NavigationEventType.Publish(s.world, e)
}

// Tally counts processed events per kind. Attach it with Subscribe to log
// or display what happened during a session.
type Tally struct {
	Clicks   int
	Drags    int
	Sections map[string]int
	Resets   int
}

// Subscribe registers the tally on both event types in world.
func (t *Tally) Subscribe(world donburi.World) {
	if t.Sections == nil {
		t.Sections = make(map[string]int)
	}
	InteractionEventType.Subscribe(world, func(_ donburi.World, e voxfolio.InteractionEvent) {
		switch e.Type {
		case voxfolio.EventClick:
			t.Clicks++
		case voxfolio.EventDragEnd:
			t.Drags++
		}
	})
	NavigationEventType.Subscribe(world, func(_ donburi.World, e nav.Event) {
		switch e.Kind {
		case nav.EventEntered:
			t.Sections[e.Section]++
		case nav.EventReset:
			t.Resets++
		}
	})
}
