package tenant

import (
	"context"
	"sync"
	"time"
)

// Cache stores resolved tenant snapshots keyed by lowercased subdomain.
type Cache interface {
	// Get returns a cached tenant, or false on miss or expiry.
	Get(ctx context.Context, key string) (*Tenant, bool)

	// Set stores a tenant with the given TTL.
	Set(ctx context.Context, key string, t *Tenant, ttl time.Duration)

	// Delete removes an entry. Used by the superadmin console so a
	// suspend/activate takes effect before the TTL elapses.
	Delete(ctx context.Context, key string)

	// Close releases resources held by the cache.
	Close() error
}

type memoryEntry struct {
	tenant    *Tenant
	expiresAt time.Time
}

// MemoryCache is the default single-process cache. Expiry is checked on
// read against an injectable clock; there is no background sweep and no size
// bound. Growth is bounded by the number of distinct subdomains ever seen,
// which for this platform is the tenant count.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

// MemoryCacheOption configures a MemoryCache.
type MemoryCacheOption func(*MemoryCache)

// WithClock overrides the cache clock. Tests use this to step time across
// the TTL boundary deterministically.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates an in-memory tenant cache.
func NewMemoryCache(opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	// Stale entries are treated as absent, never served. They are removed
	// lazily here rather than by a sweeper.
	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if cur, ok := c.items[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.tenant, true
}

func (c *MemoryCache) Set(ctx context.Context, key string, t *Tenant, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = memoryEntry{tenant: t, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

func (c *MemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *MemoryCache) Close() error { return nil }

// Len reports the number of entries, expired or not. Diagnostic only.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
