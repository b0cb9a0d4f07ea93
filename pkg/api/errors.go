package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL indicates the configured base URL is unusable.
	ErrInvalidBaseURL = errors.New("api.invalid_base_url")

	// ErrUnavailable indicates the request never produced an HTTP response
	// (connection refused, DNS failure, timeout, cancelled context).
	ErrUnavailable = errors.New("api.unavailable")

	// ErrDecoding indicates a success response body could not be parsed.
	ErrDecoding = errors.New("api.decoding_failed")
)

// Status-class sentinels. Responses carry a concrete *Error; these exist
// for errors.Is matching so callers can branch on the class without
// unpacking the struct.
var (
	ErrBadRequest   = errors.New("api.bad_request")
	ErrUnauthorized = errors.New("api.unauthorized")
	ErrForbidden    = errors.New("api.forbidden")
	ErrNotFound     = errors.New("api.not_found")
	ErrServer       = errors.New("api.server_error")
)

// Error is a failure response from the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Is matches the status-class sentinels, so
// errors.Is(err, api.ErrUnauthorized) works on any 401 response.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrServer:
		return e.Status >= 500
	default:
		return false
	}
}
