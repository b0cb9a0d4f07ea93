package statemachine

// State represents a named state.
type State interface {
	Name() string
}

// Event represents a named trigger for a state transition.
type Event interface {
	Name() string
}

// Guard evaluates whether a transition may proceed. Guards receive the
// event payload so they can reject completions that no longer correspond
// to the current state (e.g. stale generation tags).
type Guard func(from State, event Event, data any) bool

// Transition defines a state change triggered by an event, optionally
// protected by guards.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guards []Guard // all must pass for the transition to proceed
}

// StringState is a string-based State implementation.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is a string-based Event implementation.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
