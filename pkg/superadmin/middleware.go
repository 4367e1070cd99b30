package superadmin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ordidev/recetaskit/core"
	"github.com/ordidev/recetaskit/pkg/token"
)

type config struct {
	log *slog.Logger
	now func() time.Time
}

// Option configures the superadmin middleware.
type Option func(*config)

// WithLogger sets the logger for infrastructure failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithNow overrides the clock used for lockout checks, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// RequireAuth authenticates the superadmin realm from the superadmin_token
// cookie. Unlike the dashboard realm, an invalid or expired token answers
// 401 here, not 403. A token signed for a plain user, or for a deleted
// admin, answers 403: the bearer is authenticated but has no business in
// the console. Locked accounts answer 423 until the lock expires.
func RequireAuth(svc *token.Service, provider Provider, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				core.WriteError(w, core.NewError(http.StatusUnauthorized, core.CodeAuthRequired,
					"Authentication required", "Sign in to the superadmin console."))
				return
			}

			claims, err := svc.ParseAdmin(cookie.Value)
			if err != nil {
				core.WriteError(w, core.NewError(http.StatusUnauthorized, core.CodeTokenInvalid,
					"Invalid token", "The superadmin session is invalid or expired."))
				return
			}

			admin, err := provider.GetByID(r.Context(), claims.AdminID)
			if err != nil {
				if errors.Is(err, ErrAdminNotFound) {
					core.WriteError(w, core.NewError(http.StatusForbidden, core.CodeSuperadminRequired,
						"Superadmin required", "This account does not have superadmin access."))
					return
				}
				cfg.log.ErrorContext(r.Context(), "superadmin lookup failed", "admin_id", claims.AdminID, "error", err)
				core.WriteError(w, core.ErrServer)
				return
			}

			if admin.Locked(cfg.now()) {
				core.WriteError(w, core.NewError(http.StatusLocked, core.CodeAccountLocked,
					"Account locked", "This account is temporarily locked.").
					With("locked_until", admin.LockedUntil.UTC().Format(time.RFC3339)))
				return
			}

			permissions, err := provider.GetPermissions(r.Context(), admin.Role)
			if err != nil {
				cfg.log.ErrorContext(r.Context(), "permission lookup failed", "role", admin.Role, "error", err)
				core.WriteError(w, core.ErrServer)
				return
			}
			admin.Permissions = permissions

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}

// RequirePermission gates a route group on the admin holding at least one of
// the given permissions. It must run after RequireAuth; a missing admin in
// context means the chain was assembled wrong, which is a deployment bug
// answered with 500, never an open gate.
func RequirePermission(permissions ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := FromContext(r.Context())
			if !ok {
				core.WriteError(w, core.NewError(http.StatusInternalServerError, core.CodeMiddlewareOrder,
					"Middleware order error", "Permission check ran before authentication."))
				return
			}

			if !admin.HasAnyPermission(permissions...) {
				core.WriteError(w, core.NewError(http.StatusForbidden, core.CodeInsufficientPerms,
					"Insufficient permissions", "Your role does not grant access to this resource.").
					With("required", permissions))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
