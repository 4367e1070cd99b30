package auth

import (
	"context"

	"github.com/google/uuid"
)

// CookieName is the session cookie for the tenant dashboard realm.
const CookieName = "token"

// User is the minimal per-request projection of an authenticated dashboard
// user. Constructed per request and discarded with it.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// UserProvider loads users from the master database. A valid token whose
// subject no longer exists (deleted account) must return ErrUserNotFound.
type UserProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
