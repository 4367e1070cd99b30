package auth

import "errors"

// ErrUserNotFound is returned by providers when the token subject has no
// matching user row.
var ErrUserNotFound = errors.New("auth: user not found")
