package nav

// EventKind identifies a navigation event.
type EventKind uint8

const (
	EventEntered EventKind = iota // a section's flight finished and its panel is shown
	EventLeft                     // the shown or pending section was replaced or dismissed
	EventReset                    // the camera started flying Home
)

// String returns the event kind's name.
func (k EventKind) String() string {
	switch k {
	case EventEntered:
		return "entered"
	case EventLeft:
		return "left"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event reports a navigation change. Section is empty for EventReset.
type Event struct {
	Kind    EventKind
	Section string
}

// Sink receives navigation events.
type Sink interface {
	Publish(e Event)
}
