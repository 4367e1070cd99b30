package superadmin

import "errors"

// ErrAdminNotFound is returned by Provider.GetByID when the id does not
// belong to an admin account.
var ErrAdminNotFound = errors.New("admin not found")
