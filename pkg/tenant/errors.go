package tenant

import "errors"

var (
	// ErrTenantNotFound is returned by providers when no active tenant
	// matches the subdomain.
	ErrTenantNotFound = errors.New("tenant: not found")

	// ErrNoTenantInContext is returned by MustFromContext-style helpers when
	// the middleware has not run.
	ErrNoTenantInContext = errors.New("tenant: no tenant in context")
)
