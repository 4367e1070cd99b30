package tenantdb

import "errors"

var (
	// ErrEmptyDatabaseName is returned when a tenant row carries no database
	// name; such a row is a provisioning bug.
	ErrEmptyDatabaseName = errors.New("tenantdb: empty database name")

	// ErrCreatePool is returned when a pool cannot be configured or created.
	ErrCreatePool = errors.New("tenantdb: failed to create pool")
)
