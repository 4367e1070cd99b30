package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces limiter keys so they never collide with other
// keys in a shared Redis instance.
const redisKeyPrefix = "ratelimit:"

// takeScript prunes expired entries, then either records the request or
// reports the oldest live timestamp so the caller can compute retry-after.
// Running it as a script keeps prune+check+record atomic across instances.
var takeScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
if count >= limit then
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	return {-1, oldest[2]}
end

redis.call('ZADD', key, now, now .. '-' .. count)
redis.call('PEXPIRE', key, window)
return {limit - count - 1, 0}
`)

// RedisStore keeps per-key request timestamps in a Redis sorted set, so all
// API instances share one sliding window per key.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed sliding-window store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Take(ctx context.Context, key string, config Config) (int, time.Duration, error) {
	now := time.Now()

	res, err := takeScript.Run(ctx, s.client, []string{redisKeyPrefix + key},
		now.UnixMilli(), config.Window.Milliseconds(), config.MaxRequests).Slice()
	if err != nil {
		return 0, 0, errors.Join(ErrStoreFailure, err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("%w: unexpected script reply %v", ErrStoreFailure, res)
	}

	remaining, ok := res[0].(int64)
	if !ok {
		return 0, 0, fmt.Errorf("%w: unexpected script reply %v", ErrStoreFailure, res)
	}
	if remaining >= 0 {
		return int(remaining), 0, nil
	}

	oldest, err := scriptMillis(res[1])
	if err != nil {
		return 0, 0, errors.Join(ErrStoreFailure, err)
	}
	retryAfter := time.UnixMilli(oldest).Add(config.Window).Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return -1, retryAfter, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func scriptMillis(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case string:
		var ms float64
		if _, err := fmt.Sscanf(t, "%f", &ms); err != nil {
			return 0, err
		}
		return int64(ms), nil
	default:
		return 0, fmt.Errorf("unexpected score type %T", v)
	}
}
