package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("statemachine: from, to, and event cannot be nil")
	ErrInvalidEvent      = errors.New("statemachine: event cannot be nil")
)

// NoTransitionError indicates that no transition exists for the given
// state/event combination.
type NoTransitionError struct {
	StateName string
	EventName string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.StateName, e.EventName)
}

// RejectedError indicates that every candidate transition was blocked by a
// guard function.
type RejectedError struct {
	StateName string
	EventName string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transition from state %q for event %q rejected by guards", e.StateName, e.EventName)
}

// IsDiscard reports whether the error means the event should be dropped
// rather than treated as a failure: either the event is not defined for the
// current state or a guard rejected it. Stale asynchronous completions land
// in exactly these two cases.
func IsDiscard(err error) bool {
	var noTransition *NoTransitionError
	var rejected *RejectedError
	return errors.As(err, &noTransition) || errors.As(err, &rejected)
}
