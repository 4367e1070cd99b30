package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps per-key request timestamps in process memory. Entries
// older than the window are pruned on every Take, so memory usage is bounded
// by MaxRequests per active key.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock overrides the store's clock, for tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an in-memory sliding-window store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Take(_ context.Context, key string, config Config) (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-config.Window)

	window := s.windows[key]
	live := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			live = append(live, ts)
		}
	}

	if len(live) >= config.MaxRequests {
		s.windows[key] = live
		retryAfter := live[0].Sub(cutoff)
		return -1, retryAfter, nil
	}

	live = append(live, now)
	s.windows[key] = live
	return config.MaxRequests - len(live), 0, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

// Len returns the number of tracked keys, for tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
