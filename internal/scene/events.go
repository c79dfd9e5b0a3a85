package scene

// EventType names a class of scene events.
type EventType string

const (
	// EventStateChanged is published (bubbling) after every SetState.
	EventStateChanged EventType = "state-changed"
	// EventRepeatsProcessed is published (bubbling) after a repeater
	// finished rebuilding its clones.
	EventRepeatsProcessed EventType = "repeats-processed"
)

// Event is anything published through the graph.
type Event interface {
	Type() EventType
}

// StateChangedEvent carries a node's previous and next state records.
type StateChangedEvent struct {
	Object    Object
	Prev      any
	Next      any
	Generated bool
}

// Type implements Event.
func (*StateChangedEvent) Type() EventType { return EventStateChanged }

// RepeatsProcessedEvent is raised by panel and row repeaters.
type RepeatsProcessedEvent struct {
	Source Object
}

// Type implements Event.
func (*RepeatsProcessedEvent) Type() EventType { return EventRepeatsProcessed }
