package auth

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithUser attaches the authenticated user to the context.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the authenticated user, or false when authentication
// has not run.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(contextKey{}).(*User)
	return u, ok && u != nil
}

// LoggerExtractor exposes the user ID to the logger.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if u, ok := FromContext(ctx); ok {
			return slog.String("user_id", u.ID.String()), true
		}
		return slog.Attr{}, false
	}
}
