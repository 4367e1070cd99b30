package superadmin

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ordidev/recetaskit/pkg/audit"
	"github.com/ordidev/recetaskit/pkg/ratelimiter"
	"github.com/ordidev/recetaskit/pkg/requestid"
	"github.com/ordidev/recetaskit/pkg/session"
	sa "github.com/ordidev/recetaskit/pkg/superadmin"
	"github.com/ordidev/recetaskit/pkg/tenant"
	"github.com/ordidev/recetaskit/pkg/token"
)

// Permissions gating the console route groups.
const (
	PermViewTenants    = "view_tenants"
	PermManageTenants  = "manage_tenants"
	PermManageSettings = "manage_settings"
)

// TenantDirectory is the slice of the tenant store the console uses.
type TenantDirectory interface {
	List(ctx context.Context) ([]tenant.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error)
	SetStatus(ctx context.Context, id uuid.UUID, status tenant.Status) error
}

// SettingsStore reads and writes the platform session policy.
type SettingsStore interface {
	SessionPolicy(ctx context.Context) (session.Policy, error)
	UpdateSessionPolicy(ctx context.Context, policy session.Policy) error
}

// RouterOptions carries the dependencies of the console API.
type RouterOptions struct {
	Tokens   *token.Service
	Admins   sa.Provider
	Tenants  TenantDirectory
	Cache    tenant.Cache
	Settings SettingsStore
	Limiter  *ratelimiter.Limiter
	Recorder *audit.Recorder
	Log      *slog.Logger
}

// Router assembles the console chain: authentication, per-admin rate
// limiting, audit capture, then permission-gated route groups.
func Router(opts RouterOptions) chi.Router {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	h := &handlers{
		tenants:  opts.Tenants,
		cache:    opts.Cache,
		settings: opts.Settings,
		log:      opts.Log,
	}

	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(sa.RequireAuth(opts.Tokens, opts.Admins, sa.WithLogger(opts.Log)))
	r.Use(sa.RateLimit(opts.Limiter, sa.WithLogger(opts.Log)))
	r.Use(sa.Audit(opts.Recorder))

	r.Route("/tenants", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(sa.RequirePermission(PermViewTenants, PermManageTenants))
			r.Get("/", h.listTenants)
			r.Get("/{tenantID}", h.getTenant)
		})
		r.Group(func(r chi.Router) {
			r.Use(sa.RequirePermission(PermManageTenants))
			r.Post("/{tenantID}/suspend", h.suspendTenant)
			r.Post("/{tenantID}/activate", h.activateTenant)
		})
	})

	r.Route("/settings", func(r chi.Router) {
		r.Use(sa.RequirePermission(PermManageSettings))
		r.Get("/session", h.getSessionPolicy)
		r.Put("/session", h.updateSessionPolicy)
	})

	return r
}
