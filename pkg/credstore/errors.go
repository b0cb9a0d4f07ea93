package credstore

import "errors"

var (
	// ErrNoCredential indicates the slot holds no credential.
	ErrNoCredential = errors.New("credstore.no_credential")
)
