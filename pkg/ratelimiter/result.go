package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit      int           // Window capacity
	Remaining  int           // Requests left in the current window
	RetryAfter time.Duration // How long to wait when denied, 0 when allowed
}

// Allowed reports whether the request fit inside the window.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds for the
// Retry-After response header. A denied request never reports 0.
func (r *Result) RetryAfterSeconds() int {
	if r.Allowed() {
		return 0
	}
	secs := int((r.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
