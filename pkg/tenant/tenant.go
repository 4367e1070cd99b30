package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status is the subscription state of a tenant. Suspended and cancelled
// tenants resolve but are rejected by the middleware before any handler runs.
type Status string

const (
	StatusActive    Status = "active"
	StatusTrial     Status = "trial"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
)

// Tenant is the request-scoped snapshot of one customer organization. It is
// a read-only projection of the master tenants row; mutations happen through
// the superadmin console, never through this type.
type Tenant struct {
	ID             uuid.UUID `json:"id"`
	Subdomain      string    `json:"subdomain"`
	DatabaseName   string    `json:"database_name"`
	BusinessName   string    `json:"business_name"`
	Plan           string    `json:"subscription_plan"`
	Status         Status    `json:"subscription_status"`
	MaxUsers       int       `json:"max_users"`
	MaxRecipes     int       `json:"max_recipes"`
	MaxEvents      int       `json:"max_events"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// Provider loads tenants from the master database.
type Provider interface {
	// GetBySubdomain returns the active tenant for a lowercased subdomain.
	// Returns ErrTenantNotFound when no active row matches.
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)

	// TouchActivity updates the tenant's last_activity_at timestamp. Called
	// detached from the request path; concurrent touches for the same tenant
	// are last-write-wins, which is acceptable for a timestamp.
	TouchActivity(ctx context.Context, id uuid.UUID) error
}
