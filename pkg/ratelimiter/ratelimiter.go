package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config defines the sliding window.
type Config struct {
	MaxRequests int           // Maximum requests allowed inside the window
	Window      time.Duration // Window length
}

func (c Config) validate() error {
	if c.MaxRequests <= 0 {
		return fmt.Errorf("%w: max requests must be positive, got %d", ErrInvalidConfig, c.MaxRequests)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	return nil
}

// Limiter is a sliding-window rate limiter. Every allowed request is
// recorded with its timestamp; a request is denied when the window already
// holds MaxRequests entries younger than Window.
type Limiter struct {
	store  Store
	config Config
}

// New creates a sliding-window limiter backed by the given store.
func New(store Store, config Config) (*Limiter, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Limiter{
		store:  store,
		config: config,
	}, nil
}

// Allow records the request against key and reports whether it fits in the
// window. Denied requests are not recorded, so a client hammering a full
// window does not push its own reset further out.
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	remaining, retryAfter, err := l.store.Take(ctx, key, l.config)
	if err != nil {
		return nil, err
	}

	return &Result{
		Limit:      l.config.MaxRequests,
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}, nil
}

// Reset clears the window for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
