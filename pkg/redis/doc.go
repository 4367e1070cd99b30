// Package redis provides the Redis client constructor used by the shared
// tenant-cache backend. Single-instance deployments use the in-memory cache
// instead and never touch this package.
package redis
