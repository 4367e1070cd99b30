package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ordidev/recetaskit/core"
	"github.com/ordidev/recetaskit/pkg/auth"
	"github.com/ordidev/recetaskit/pkg/requestid"
	"github.com/ordidev/recetaskit/pkg/session"
	"github.com/ordidev/recetaskit/pkg/tenant"
	"github.com/ordidev/recetaskit/pkg/tenantdb"
	"github.com/ordidev/recetaskit/pkg/token"
)

// RouterOptions carries the dependencies of the tenant dashboard API.
type RouterOptions struct {
	Tenants  tenant.Provider
	Cache    tenant.Cache
	Pools    tenantdb.Pooler
	Tokens   *token.Service
	Users    auth.UserProvider
	Settings session.PolicyProvider
	Cookies  session.Config
	Log      *slog.Logger
}

// Router assembles the dashboard middleware chain: tenant resolution, then
// tenant database attachment, then authentication, then session refresh.
// Each stage requires the previous one; the chain order here is the only
// place it is encoded.
func Router(opts RouterOptions) chi.Router {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(tenant.Middleware(opts.Tenants,
		tenant.WithCache(opts.Cache),
		tenant.WithLogger(opts.Log),
	))
	r.Use(tenantdb.Middleware(opts.Pools))
	r.Use(auth.Middleware(opts.Tokens, opts.Users, opts.Log))
	r.Use(session.Refresh(opts.Tokens, opts.Settings, opts.Cookies,
		session.WithLogger(opts.Log)))

	r.Get("/me", handleMe)
	r.Get("/ping", handlePing(opts.Log))

	return r
}

// handleMe returns the resolved tenant and authenticated user, the
// dashboard shell's bootstrap call.
func handleMe(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant.FromContext(r.Context())
	if !ok {
		core.WriteError(w, core.ErrTenantNotResolved)
		return
	}
	u, ok := auth.FromContext(r.Context())
	if !ok {
		core.WriteError(w, core.ErrAuthRequired)
		return
	}

	core.JSON(w, http.StatusOK, map[string]any{
		"tenant": t,
		"user":   u,
	})
}

// handlePing round-trips the tenant database so deploys can verify the
// whole chain end to end, pool included.
func handlePing(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, ok := tenantdb.DB(r.Context())
		if !ok {
			core.WriteError(w, core.ErrTenantNotResolved)
			return
		}

		var one int
		if err := pool.QueryRow(r.Context(), `SELECT 1`).Scan(&one); err != nil {
			log.ErrorContext(r.Context(), "tenant db ping failed", "error", err)
			core.WriteError(w, core.ErrDatabaseConnection)
			return
		}

		core.JSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}
