package ratelimiter

import (
	"context"
	"time"
)

// Store defines the interface for rate limit storage backends.
type Store interface {
	// Take records a request against key if the window has room.
	// Returns the remaining capacity after this request; remaining < 0
	// means the request was denied and retryAfter is how long until the
	// oldest entry leaves the window.
	Take(ctx context.Context, key string, config Config) (remaining int, retryAfter time.Duration, err error)

	// Reset clears the window for the given key.
	Reset(ctx context.Context, key string) error
}
