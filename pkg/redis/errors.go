package redis

import "errors"

var (
	// ErrInvalidConnectionURL indicates the connection URL could not be parsed.
	ErrInvalidConnectionURL = errors.New("redis.invalid_connection_url")

	// ErrNotReady indicates the server did not become reachable within the
	// configured retry budget.
	ErrNotReady = errors.New("redis.not_ready")
)
