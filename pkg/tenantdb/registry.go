package tenantdb

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"
)

// Registry holds at most one live connection pool per tenant database name
// for the lifetime of the process. Pools are created lazily on first access;
// singleflight collapses concurrent first accesses for the same database, so
// a cold-cache burst of requests for one tenant still produces exactly one
// pool.
type Registry struct {
	cfg Config
	log *slog.Logger

	mu    sync.RWMutex
	pools map[string]*pgxpool.Pool
	sfg   singleflight.Group
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger for pool lifecycle events.
func WithLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config, opts ...RegistryOption) *Registry {
	r := &Registry{
		cfg:   cfg,
		log:   slog.Default(),
		pools: make(map[string]*pgxpool.Pool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the pool for databaseName, creating it on first access.
func (r *Registry) Get(ctx context.Context, databaseName string) (*pgxpool.Pool, error) {
	if databaseName == "" {
		return nil, ErrEmptyDatabaseName
	}

	r.mu.RLock()
	pool, ok := r.pools[databaseName]
	r.mu.RUnlock()
	if ok {
		return pool, nil
	}

	v, err, _ := r.sfg.Do(databaseName, func() (any, error) {
		// Re-check after the singleflight barrier: a previous flight may
		// have registered the pool between our read and this call.
		r.mu.RLock()
		pool, ok := r.pools[databaseName]
		r.mu.RUnlock()
		if ok {
			return pool, nil
		}

		pool, err := r.open(ctx, databaseName)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.pools[databaseName] = pool
		r.mu.Unlock()

		r.log.InfoContext(ctx, "created tenant database pool", "database", databaseName)
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pgxpool.Pool), nil
}

func (r *Registry) open(ctx context.Context, databaseName string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(r.cfg.dsn(databaseName))
	if err != nil {
		return nil, errors.Join(ErrCreatePool, err)
	}
	poolCfg.MaxConns = r.cfg.MaxConns
	poolCfg.MinConns = r.cfg.MinConns
	poolCfg.MaxConnIdleTime = r.cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = r.cfg.HealthCheckPeriod

	// Connections are established lazily on first acquire; pgx queues
	// acquires beyond MaxConns instead of failing them.
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Join(ErrCreatePool, err)
	}
	return pool, nil
}

// Close drains and removes the pool for one database. No-op for unknown
// names.
func (r *Registry) Close(databaseName string) {
	r.mu.Lock()
	pool, ok := r.pools[databaseName]
	if ok {
		delete(r.pools, databaseName)
	}
	r.mu.Unlock()

	if ok {
		pool.Close()
		r.log.Info("closed tenant database pool", "database", databaseName)
	}
}

// CloseAll drains and removes every pool. Registered as a server stop hook
// so process shutdown releases all tenant connections.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	pools := r.pools
	r.pools = make(map[string]*pgxpool.Pool)
	r.mu.Unlock()

	for name, pool := range pools {
		pool.Close()
		r.log.Info("closed tenant database pool", "database", name)
	}
}

// PoolStats is a point-in-time snapshot of one pool's connection counts.
type PoolStats struct {
	Acquired int32 `json:"acquired"`
	Idle     int32 `json:"idle"`
	Total    int32 `json:"total"`
	Max      int32 `json:"max"`
	Queued   int64 `json:"queued"`
}

// Stats reports connection counts per database for diagnostics.
func (r *Registry) Stats() map[string]PoolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make(map[string]PoolStats, len(r.pools))
	for name, pool := range r.pools {
		s := pool.Stat()
		stats[name] = PoolStats{
			Acquired: s.AcquiredConns(),
			Idle:     s.IdleConns(),
			Total:    s.TotalConns(),
			Max:      s.MaxConns(),
			Queued:   s.EmptyAcquireCount(),
		}
	}
	return stats
}
