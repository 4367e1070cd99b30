package superadmin

import "context"

type contextKey struct{}

// WithAdmin returns a context carrying the authenticated admin.
func WithAdmin(ctx context.Context, a *Admin) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the admin attached by RequireAuth.
func FromContext(ctx context.Context) (*Admin, bool) {
	a, ok := ctx.Value(contextKey{}).(*Admin)
	return a, ok
}
