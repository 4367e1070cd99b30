package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tenant:subdomain:"

// RedisCache shares resolved tenants across instances. Redis failures
// degrade to cache misses so the middleware falls through to the master
// database instead of failing the request.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache wraps an existing Redis client. The caller owns the client's
// lifecycle; Close here is a no-op.
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var t Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		// A corrupt entry is unreadable forever; drop it.
		c.client.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}

	return &t, true
}

func (c *RedisCache) Set(ctx context.Context, key string, t *Tenant, ttl time.Duration) {
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	c.client.Set(ctx, redisKeyPrefix+key, data, ttl)
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, redisKeyPrefix+key)
}

func (c *RedisCache) Close() error { return nil }
