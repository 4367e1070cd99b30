package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordidev/recetaskit/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_Take(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := ratelimiter.Config{MaxRequests: 3, Window: time.Minute}

	t.Run("allows up to max requests", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()

		for want := 2; want >= 0; want-- {
			remaining, retryAfter, err := store.Take(ctx, "admin-1", cfg)
			require.NoError(t, err)
			assert.Equal(t, want, remaining)
			assert.Zero(t, retryAfter)
		}

		remaining, retryAfter, err := store.Take(ctx, "admin-1", cfg)
		require.NoError(t, err)
		assert.Equal(t, -1, remaining)
		assert.Positive(t, retryAfter)
	})

	t.Run("window slides", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clock.Now))

		for range 3 {
			_, _, err := store.Take(ctx, "admin-1", cfg)
			require.NoError(t, err)
			clock.Advance(10 * time.Second)
		}

		// 30s in, window is full; the first entry expires 30s from now.
		remaining, retryAfter, err := store.Take(ctx, "admin-1", cfg)
		require.NoError(t, err)
		assert.Equal(t, -1, remaining)
		assert.Equal(t, 30*time.Second, retryAfter)

		clock.Advance(31 * time.Second)

		remaining, _, err = store.Take(ctx, "admin-1", cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("denied requests are not recorded", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clock.Now))

		for range 3 {
			_, _, err := store.Take(ctx, "admin-1", cfg)
			require.NoError(t, err)
		}

		// Hammering a full window must not push the reset further out.
		for range 10 {
			clock.Advance(time.Second)
			remaining, _, err := store.Take(ctx, "admin-1", cfg)
			require.NoError(t, err)
			assert.Equal(t, -1, remaining)
		}

		clock.Advance(51 * time.Second)

		remaining, _, err := store.Take(ctx, "admin-1", cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, remaining, 0)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()

		for range 3 {
			_, _, err := store.Take(ctx, "admin-1", cfg)
			require.NoError(t, err)
		}

		remaining, _, err := store.Take(ctx, "admin-2", cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})

	t.Run("reset clears the window", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()

		for range 3 {
			_, _, err := store.Take(ctx, "admin-1", cfg)
			require.NoError(t, err)
		}
		require.NoError(t, store.Reset(ctx, "admin-1"))

		remaining, _, err := store.Take(ctx, "admin-1", cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimiter.NewMemoryStore()
	cfg := ratelimiter.Config{MaxRequests: 50, Window: time.Minute}

	var wg sync.WaitGroup
	allowed := make([]bool, 100)
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remaining, _, err := store.Take(ctx, "shared", cfg)
			require.NoError(t, err)
			allowed[i] = remaining >= 0
		}()
	}
	wg.Wait()

	var count int
	for _, ok := range allowed {
		if ok {
			count++
		}
	}
	assert.Equal(t, 50, count)
}
