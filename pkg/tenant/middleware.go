package tenant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ordidev/recetaskit/core"
)

// Middleware resolves the tenant for every request: subdomain extraction,
// cache lookup, master-database fallback, subscription gating, and context
// attachment. The subscription gate runs on cache hits too, so a tenant
// suspended mid-TTL is rejected as soon as the console clears its cache
// entry, and a stale-cached suspended tenant can never slip through.
func Middleware(provider Provider, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		cache:        NewMemoryCache(),
		cacheTTL:     DefaultCacheTTL,
		touchTimeout: 5 * time.Second,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub := ResolveSubdomain(r.Host)
			if sub == "" || strings.EqualFold(sub, "www") {
				// Bare-domain and www traffic never resolves to a tenant;
				// those hosts serve the marketing site.
				core.WriteError(w, core.ErrTenantRequired)
				return
			}

			key := strings.ToLower(sub)
			ctx := r.Context()

			if cached, ok := cfg.cache.Get(ctx, key); ok {
				if e := statusError(cached); e != nil {
					core.WriteError(w, e)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithTenant(ctx, cached)))
				return
			}

			t, err := provider.GetBySubdomain(ctx, key)
			if err != nil {
				if errors.Is(err, ErrTenantNotFound) {
					core.WriteError(w, core.NewError(http.StatusNotFound, core.CodeTenantNotFound,
						"Tenant not found", "No organization is registered under this subdomain.").
						With("subdomain", key))
					return
				}
				cfg.log.ErrorContext(ctx, "tenant resolution failed", "subdomain", key, "error", err)
				core.WriteError(w, core.NewError(http.StatusInternalServerError, core.CodeTenantResolutionError,
					"Tenant resolution error", "Could not resolve the organization for this request."))
				return
			}

			if e := statusError(t); e != nil {
				core.WriteError(w, e)
				return
			}

			cfg.cache.Set(ctx, key, t, cfg.cacheTTL)
			touchActivity(ctx, provider, t, cfg)

			next.ServeHTTP(w, r.WithContext(WithTenant(ctx, t)))
		})
	}
}

// RequireTenant guards routes that must run after Middleware. A missing
// tenant here is a router wiring bug, not a client error, hence 500.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			core.WriteError(w, core.ErrTenantNotResolved)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func statusError(t *Tenant) *core.Error {
	switch t.Status {
	case StatusSuspended:
		return core.NewError(http.StatusForbidden, core.CodeTenantSuspended,
			"Tenant suspended", "This account has been suspended. Contact support to reactivate it.").
			With("subdomain", t.Subdomain)
	case StatusCancelled:
		return core.NewError(http.StatusForbidden, core.CodeTenantCancelled,
			"Tenant cancelled", "This account has been cancelled.").
			With("subdomain", t.Subdomain)
	default:
		return nil
	}
}

// touchActivity updates last_activity_at detached from the request. The
// response never waits on it and its failure is logged only.
func touchActivity(ctx context.Context, provider Provider, t *Tenant, cfg *config) {
	detached := context.WithoutCancel(ctx)
	go func() {
		tctx, cancel := context.WithTimeout(detached, cfg.touchTimeout)
		defer cancel()
		if err := provider.TouchActivity(tctx, t.ID); err != nil {
			cfg.log.ErrorContext(tctx, "failed to update tenant activity",
				"tenant_id", t.ID, "error", err)
		}
	}()
}
