package tenantdb

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordidev/recetaskit/core"
	"github.com/ordidev/recetaskit/pkg/tenant"
)

// Pooler is the registry surface the middleware needs. Satisfied by
// *Registry; tests substitute stubs.
type Pooler interface {
	Get(ctx context.Context, databaseName string) (*pgxpool.Pool, error)
}

type dbContextKey struct{}

// Middleware attaches the resolved tenant's database pool to the request
// context. It must run after tenant resolution; a missing tenant is a
// router wiring bug and fails with TENANT_NOT_RESOLVED rather than
// pretending the request was malformed.
func Middleware(pooler Pooler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ten, ok := tenant.FromContext(r.Context())
			if !ok {
				core.WriteError(w, core.ErrTenantNotResolved)
				return
			}

			pool, err := pooler.Get(r.Context(), ten.DatabaseName)
			if err != nil {
				core.WriteError(w, core.ErrDatabaseConnection)
				return
			}

			ctx := context.WithValue(r.Context(), dbContextKey{}, pool)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DB returns the tenant-scoped pool attached by Middleware. Handlers query
// through this pool only; the master database is never reachable from
// tenant request context.
func DB(ctx context.Context) (*pgxpool.Pool, bool) {
	pool, ok := ctx.Value(dbContextKey{}).(*pgxpool.Pool)
	return pool, ok
}
