package audit

import "errors"

var (
	// ErrInvalidEntry indicates the entry is missing required fields.
	ErrInvalidEntry = errors.New("invalid audit entry")

	// ErrStorageFailure indicates the storage backend failed.
	ErrStorageFailure = errors.New("audit storage failure")
)
