package superadmin

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// CookieName is the superadmin session cookie. The superadmin console is a
// separate authentication realm from the tenant dashboard, with its own
// token audience and its own cookie.
const CookieName = "superadmin_token"

// RoleSuperAdmin passes every permission check unconditionally.
const RoleSuperAdmin = "super_admin"

// Admin is the console operator attached to the request after RequireAuth.
type Admin struct {
	ID          uuid.UUID
	Email       string
	Name        string
	Role        string
	Permissions []string
	LockedUntil *time.Time
}

// Locked reports whether the account is locked out at the given instant.
func (a *Admin) Locked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// HasAnyPermission reports whether the admin holds at least one of the given
// permissions. The super_admin role holds everything implicitly.
func (a *Admin) HasAnyPermission(permissions ...string) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range permissions {
		if slices.Contains(a.Permissions, p) {
			return true
		}
	}
	return false
}

// Provider loads admin accounts and their role permissions from the master
// schema.
type Provider interface {
	// GetByID returns the admin account, without permissions filled in.
	// Returns ErrAdminNotFound when the id does not belong to an admin.
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)

	// GetPermissions returns the permission strings granted to a role.
	GetPermissions(ctx context.Context, role string) ([]string, error)
}
