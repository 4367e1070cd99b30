package session

import "net/http"

// CookieAttrs is the computed attribute set for the re-issued session
// cookie. Kept as data so the topology branching is testable without an
// HTTP layer.
type CookieAttrs struct {
	Secure      bool
	SameSite    http.SameSite
	Partitioned bool

	// HasMaxAge is false when the cookie should be a browser-session cookie
	// (auto-close policy); MaxAge is meaningless in that case.
	HasMaxAge bool
	MaxAge    int
}

// CookiePolicy computes cookie attributes from the deployment topology and
// session policy.
//
// Behind the shared cross-subdomain tunnel the dashboard and API are
// different registrable domains, so the cookie must be Secure, SameSite=None
// and Partitioned (CHIPS) to be accepted at all, and host-only so the tunnel
// host boundary is respected. In a conventional deployment the strict
// attributes are applied only in production; development keeps Lax over
// plain HTTP.
func CookiePolicy(tunnel, production bool, policy Policy) CookieAttrs {
	attrs := CookieAttrs{}

	if tunnel {
		attrs.Secure = true
		attrs.SameSite = http.SameSiteNoneMode
		attrs.Partitioned = true
	} else if production {
		attrs.Secure = true
		attrs.SameSite = http.SameSiteNoneMode
	} else {
		attrs.SameSite = http.SameSiteLaxMode
	}

	if !policy.AutoClose {
		attrs.HasMaxAge = true
		attrs.MaxAge = policy.TimeoutMinutes * 60
	}

	return attrs
}

// apply copies the attributes onto an http.Cookie. The cookie is always
// httpOnly and scoped to the whole site; Domain stays empty (host-only) in
// every topology.
func (a CookieAttrs) apply(c *http.Cookie) {
	c.Path = "/"
	c.HttpOnly = true
	c.Secure = a.Secure
	c.SameSite = a.SameSite
	c.Partitioned = a.Partitioned
	if a.HasMaxAge {
		c.MaxAge = a.MaxAge
	}
}
