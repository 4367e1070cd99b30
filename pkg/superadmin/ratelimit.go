package superadmin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ordidev/recetaskit/core"
	"github.com/ordidev/recetaskit/pkg/ratelimiter"
)

// RateLimit throttles console traffic per admin account. It must run after
// RequireAuth since the limiter key is the admin id. A limiter store failure
// lets the request through with a logged warning; the console stays usable
// when the store is down.
func RateLimit(limiter *ratelimiter.Limiter, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{log: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := FromContext(r.Context())
			if !ok {
				core.WriteError(w, core.NewError(http.StatusInternalServerError, core.CodeMiddlewareOrder,
					"Middleware order error", "Rate limiter ran before authentication."))
				return
			}

			result, err := limiter.Allow(r.Context(), admin.ID.String())
			if err != nil {
				cfg.log.WarnContext(r.Context(), "rate limiter unavailable", "admin_id", admin.ID, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !result.Allowed() {
				retryAfter := result.RetryAfterSeconds()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				core.WriteError(w, core.NewError(http.StatusTooManyRequests, core.CodeRateLimitExceeded,
					"Rate limit exceeded", "Too many requests. Slow down.").
					With("retry_after", retryAfter))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
