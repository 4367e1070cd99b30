package directory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordidev/recetaskit/pkg/audit"
)

// AuditStore appends to the audit_logs table.
type AuditStore struct {
	pool *pgxpool.Pool
}

// NewAuditStore creates a store over the master pool.
func NewAuditStore(pool *pgxpool.Pool) *AuditStore {
	return &AuditStore{pool: pool}
}

func (s *AuditStore) Store(ctx context.Context, entry audit.Entry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_logs (
			id, admin_id, action_type, target_tenant_id, target_user_id,
			action_details, ip_address, user_agent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.AdminID, entry.ActionType,
		entry.TargetTenantID, entry.TargetUserID,
		entry.Details, entry.IPAddress, entry.UserAgent, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
