package tenant

import (
	"log/slog"
	"time"
)

// DefaultCacheTTL is how long a resolved tenant is served without a master
// database lookup. Superadmin suspend/activate calls Cache.Delete so they do
// not wait out the TTL.
const DefaultCacheTTL = 5 * time.Minute

type config struct {
	cache        Cache
	cacheTTL     time.Duration
	touchTimeout time.Duration
	log          *slog.Logger
}

// Option configures the resolution middleware.
type Option func(*config)

// WithCache swaps the cache backend (e.g. RedisCache for multi-instance
// deployments). Default is a process-local MemoryCache.
func WithCache(cache Cache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithCacheTTL overrides DefaultCacheTTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithTouchTimeout bounds the detached last-activity update.
func WithTouchTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.touchTimeout = d
		}
	}
}

// WithLogger sets the logger for resolution failures and detached side
// effects.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
