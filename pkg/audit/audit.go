package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded superadmin action.
type Entry struct {
	ID             uuid.UUID       `json:"id"`
	AdminID        uuid.UUID       `json:"admin_id"`
	ActionType     string          `json:"action_type"`
	TargetTenantID uuid.NullUUID   `json:"target_tenant_id"`
	TargetUserID   uuid.NullUUID   `json:"target_user_id"`
	Details        json.RawMessage `json:"details,omitempty"`
	IPAddress      string          `json:"ip_address,omitempty"`
	UserAgent      string          `json:"user_agent,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Validate checks the entry has the required fields.
func (e *Entry) Validate() error {
	if e.AdminID == uuid.Nil {
		return fmt.Errorf("%w: admin id is required", ErrInvalidEntry)
	}
	if e.ActionType == "" {
		return fmt.Errorf("%w: action type is required", ErrInvalidEntry)
	}
	return nil
}

// Storage persists audit entries.
type Storage interface {
	Store(ctx context.Context, entry Entry) error
}
