package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned when the limiter configuration is invalid.
	ErrInvalidConfig = errors.New("invalid rate limiter config")

	// ErrStoreFailure is returned when the storage backend fails.
	ErrStoreFailure = errors.New("rate limiter store failure")
)
