package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultWriteTimeout bounds a detached audit write.
const DefaultWriteTimeout = 10 * time.Second

// Recorder writes audit entries without blocking the request that produced
// them. Writes run on a detached context so the admin's response is never
// delayed or failed by audit storage; failures are logged and dropped.
type Recorder struct {
	storage Storage
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithTimeout overrides DefaultWriteTimeout for detached writes.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Recorder) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithLogger sets the logger for failed writes.
func WithLogger(log *slog.Logger) Option {
	return func(r *Recorder) {
		if log != nil {
			r.log = log
		}
	}
}

// WithClock overrides the clock used for CreatedAt, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates a Recorder over the given storage.
func NewRecorder(storage Storage, opts ...Option) *Recorder {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	r := &Recorder{
		storage: storage,
		timeout: DefaultWriteTimeout,
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record fills in the entry's ID and CreatedAt and persists it on a
// detached goroutine. Invalid entries are logged and dropped; Record never
// returns an error and never blocks on storage.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	entry.ID = uuid.New()
	entry.CreatedAt = r.now()

	if err := entry.Validate(); err != nil {
		r.log.ErrorContext(ctx, "dropping invalid audit entry", "action_type", entry.ActionType, "error", err)
		return
	}

	// Detach from the request context so cancellation after the response
	// does not abort the write, but keep request-scoped values for logging.
	detached := context.WithoutCancel(ctx)

	go func() {
		ctx, cancel := context.WithTimeout(detached, r.timeout)
		defer cancel()

		if err := r.storage.Store(ctx, entry); err != nil {
			r.log.ErrorContext(ctx, "audit write failed",
				"entry_id", entry.ID,
				"admin_id", entry.AdminID,
				"action_type", entry.ActionType,
				"error", err)
		}
	}()
}
