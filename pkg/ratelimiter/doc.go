// Package ratelimiter provides a sliding-window rate limiter with pluggable
// storage backends.
//
// The window tracks individual request timestamps, so limits are exact: a
// request is denied only when the last Window really holds MaxRequests
// entries, and RetryAfter reports precisely when the oldest entry expires.
//
// Two stores are provided. MemoryStore is per-process and suits a single
// API instance; RedisStore shares the window across instances through a
// sorted set per key.
//
// Usage:
//
//	limiter, err := ratelimiter.New(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		MaxRequests: 100,
//		Window:      time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, adminID.String())
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		// deny with result.RetryAfterSeconds()
//	}
package ratelimiter
