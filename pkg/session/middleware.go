package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ordidev/recetaskit/pkg/auth"
	"github.com/ordidev/recetaskit/pkg/token"
)

// DefaultPolicyTTL is how long a loaded session policy is reused before the
// settings store is consulted again.
const DefaultPolicyTTL = 5 * time.Minute

// Config selects the cookie topology branch from the environment.
type Config struct {
	// Tunnel marks the shared cross-subdomain tunnel deployment, where the
	// dashboard reaches the API through a different registrable domain.
	Tunnel bool `env:"CROSS_SUBDOMAIN_TUNNEL" envDefault:"false"`

	// Production relaxes nothing; development relaxes Secure/SameSite so
	// plain-HTTP local setups keep their session.
	Production bool `env:"PRODUCTION" envDefault:"false"`
}

type config struct {
	policyTTL time.Duration
	now       func() time.Time
	log       *slog.Logger
}

// Option configures the refresh middleware.
type Option func(*config)

// WithPolicyTTL overrides DefaultPolicyTTL.
func WithPolicyTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.policyTTL = ttl
		}
	}
}

// WithNow overrides the clock used for the policy cache.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for swallowed refresh failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// Refresh implements rolling sessions: on every authenticated request it
// re-signs the session token with the configured expiry and re-issues the
// cookie. Refresh is best-effort: a request never fails because its cookie
// could not be refreshed, the session just expires on the old schedule.
func Refresh(svc *token.Service, provider PolicyProvider, topo Config, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		policyTTL: DefaultPolicyTTL,
		now:       time.Now,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cache := newPolicyCache(provider, cfg.policyTTL, cfg.now, cfg.log)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.FromContext(r.Context())
			if _, err := r.Cookie(auth.CookieName); ok && err == nil {
				refresh(w, r, svc, cache, topo, cfg, user)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func refresh(w http.ResponseWriter, r *http.Request, svc *token.Service, cache *policyCache, topo Config, cfg *config, user *auth.User) {
	policy := cache.get(r.Context())

	signed, err := svc.GenerateUser(user.ID, user.Role, user.Email,
		time.Duration(policy.TimeoutMinutes)*time.Minute)
	if err != nil {
		cfg.log.ErrorContext(r.Context(), "session refresh failed", "user_id", user.ID, "error", err)
		return
	}

	cookie := &http.Cookie{Name: auth.CookieName, Value: signed}
	CookiePolicy(topo.Tunnel, topo.Production, policy).apply(cookie)
	http.SetCookie(w, cookie)
}
