package session

import "errors"

var (
	// ErrNotAuthenticated indicates an operation that requires an
	// authenticated session was called without one.
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrInvalidRole indicates a role value the marketplace does not know.
	ErrInvalidRole = errors.New("session.invalid_role")

	// ErrSessionEnded indicates the session changed while an operation was
	// in flight and its result was discarded.
	ErrSessionEnded = errors.New("session.ended")
)
