// Package dashboard mounts the tenant-facing API. It owns the middleware
// chain every dashboard request passes through: subdomain resolution to a
// tenant, attachment of that tenant's database pool, cookie authentication,
// and rolling session refresh.
package dashboard
