// Package superadmin implements the middleware chain for the platform
// operator console: authentication against the master admin tables,
// role-permission gating, per-admin rate limiting, and audit logging of
// mutating actions.
//
// The console is its own authentication realm. It uses the superadmin_token
// cookie and a token audience distinct from the tenant dashboard, so a
// dashboard session can never reach a console route and vice versa.
//
// The intended chain order is fixed:
//
//	r.Use(superadmin.RequireAuth(tokenSvc, admins))
//	r.Use(superadmin.RateLimit(limiter))
//	r.Use(superadmin.Audit(recorder))
//
//	r.Route("/tenants", func(r chi.Router) {
//		r.Use(superadmin.RequirePermission("manage_tenants"))
//		...
//	})
//
// RequirePermission and RateLimit verify the admin is already in context
// and answer MIDDLEWARE_ORDER_ERROR when it is not, so a mis-assembled
// chain fails loudly instead of granting access.
package superadmin
