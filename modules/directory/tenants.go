package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordidev/recetaskit/pkg/tenant"
)

const tenantColumns = `id, subdomain, database_name, business_name,
	subscription_plan, subscription_status, max_users, max_recipes,
	max_events, last_activity_at`

// TenantStore reads and mutates the master tenants table.
type TenantStore struct {
	pool *pgxpool.Pool
}

// NewTenantStore creates a store over the master pool.
func NewTenantStore(pool *pgxpool.Pool) *TenantStore {
	return &TenantStore{pool: pool}
}

// GetBySubdomain returns the active tenant for a lowercased subdomain.
// Deactivated rows are invisible here: a deleted tenant resolves the same
// as one that never existed.
func (s *TenantStore) GetBySubdomain(ctx context.Context, subdomain string) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		WHERE lower(subdomain) = $1 AND is_active = true`,
		subdomain)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("query tenant by subdomain: %w", err)
	}
	return t, nil
}

// TouchActivity stamps last_activity_at. Runs detached from the request
// path; last-write-wins between concurrent touches is fine for a timestamp.
func (s *TenantStore) TouchActivity(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE tenants SET last_activity_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch tenant activity: %w", err)
	}
	return nil
}

// GetByID returns a tenant regardless of is_active, for the console.
func (s *TenantStore) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		WHERE id = $1`,
		id)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("query tenant by id: %w", err)
	}
	return t, nil
}

// List returns all tenants ordered by business name, for the console.
func (s *TenantStore) List(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		ORDER BY business_name`)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, *t)
	}
	return tenants, rows.Err()
}

// SetStatus transitions subscription_status. Returns ErrTenantNotFound when
// the id does not exist; the caller invalidates the directory cache so the
// new status takes effect before the TTL would expire.
func (s *TenantStore) SetStatus(ctx context.Context, id uuid.UUID, status tenant.Status) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE tenants SET subscription_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set tenant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tenant.ErrTenantNotFound
	}
	return nil
}

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant
	err := row.Scan(
		&t.ID, &t.Subdomain, &t.DatabaseName, &t.BusinessName,
		&t.Plan, &t.Status, &t.MaxUsers, &t.MaxRecipes,
		&t.MaxEvents, &t.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
