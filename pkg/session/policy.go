package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Policy is the platform-wide session policy, editable from the superadmin
// console settings page.
type Policy struct {
	// TimeoutMinutes is the rolling session length. Every authenticated
	// request re-signs the token with this expiry.
	TimeoutMinutes int

	// AutoClose makes the cookie a browser-session cookie (no Max-Age), so
	// closing the browser ends the session regardless of token expiry.
	AutoClose bool
}

// DefaultPolicy applies when the settings store is unreachable. Session
// refresh must never fail a request over a settings read.
var DefaultPolicy = Policy{TimeoutMinutes: 120, AutoClose: false}

// PolicyProvider loads the session policy from the settings store.
type PolicyProvider interface {
	SessionPolicy(ctx context.Context) (Policy, error)
}

// policyCache caches the policy for a fixed TTL so refresh does not read
// settings on every request. Provider errors fall back to DefaultPolicy and
// are cached like a successful read to avoid hammering a failing store.
type policyCache struct {
	provider PolicyProvider
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger

	mu        sync.Mutex
	policy    Policy
	fetchedAt time.Time
	primed    bool
}

func newPolicyCache(provider PolicyProvider, ttl time.Duration, now func() time.Time, log *slog.Logger) *policyCache {
	return &policyCache{provider: provider, ttl: ttl, now: now, log: log}
}

func (c *policyCache) get(ctx context.Context) Policy {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.primed && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.policy
	}

	policy, err := c.provider.SessionPolicy(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "session policy lookup failed, using defaults", "error", err)
		policy = DefaultPolicy
	}
	if policy.TimeoutMinutes <= 0 {
		policy.TimeoutMinutes = DefaultPolicy.TimeoutMinutes
	}

	c.policy = policy
	c.fetchedAt = c.now()
	c.primed = true
	return policy
}
