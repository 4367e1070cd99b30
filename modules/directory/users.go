package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordidev/recetaskit/pkg/auth"
)

// UserStore reads the master users table for dashboard authentication.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a store over the master pool.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// GetByID returns the user the token subject refers to. A missing row means
// the account was deleted after the token was issued.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	var u auth.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, role FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return &u, nil
}
