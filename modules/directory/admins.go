package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordidev/recetaskit/pkg/superadmin"
)

// AdminStore reads the superadmin account and permission tables.
type AdminStore struct {
	pool *pgxpool.Pool
}

// NewAdminStore creates a store over the master pool.
func NewAdminStore(pool *pgxpool.Pool) *AdminStore {
	return &AdminStore{pool: pool}
}

// GetByID returns the admin account without permissions; RequireAuth loads
// those separately per role.
func (s *AdminStore) GetByID(ctx context.Context, id uuid.UUID) (*superadmin.Admin, error) {
	var a superadmin.Admin
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, name, superadmin_role, locked_until
		FROM superadmin_users
		WHERE id = $1`, id).
		Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.LockedUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, superadmin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("query admin by id: %w", err)
	}
	return &a, nil
}

// GetPermissions returns the permission strings granted to a role. An
// unknown role gets an empty set, not an error.
func (s *AdminStore) GetPermissions(ctx context.Context, role string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT permission FROM superadmin_permissions WHERE superadmin_role = $1`, role)
	if err != nil {
		return nil, fmt.Errorf("query role permissions: %w", err)
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}
