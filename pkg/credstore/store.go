package credstore

import "context"

// Store persists a single opaque bearer credential across client restarts.
// It is purely mechanical: no validation of the stored value is performed.
// The session manager is the only writer.
type Store interface {
	// Get returns the stored credential, or ErrNoCredential when the slot
	// is empty.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored credential.
	Set(ctx context.Context, credential string) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
