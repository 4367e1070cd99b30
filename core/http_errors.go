package core

import "net/http"

// Code is a machine-readable error identifier. Clients branch on codes, not
// on HTTP status or human-readable text.
type Code string

const (
	CodeTenantRequired        Code = "TENANT_REQUIRED"
	CodeTenantNotFound        Code = "TENANT_NOT_FOUND"
	CodeTenantSuspended       Code = "TENANT_SUSPENDED"
	CodeTenantCancelled       Code = "TENANT_CANCELLED"
	CodeTenantResolutionError Code = "TENANT_RESOLUTION_ERROR"
	CodeTenantNotResolved     Code = "TENANT_NOT_RESOLVED"
	CodeDatabaseConnection    Code = "DATABASE_CONNECTION_ERROR"
	CodeAuthRequired          Code = "AUTH_REQUIRED"
	CodeTokenInvalid          Code = "TOKEN_INVALID"
	CodeSuperadminRequired    Code = "SUPERADMIN_REQUIRED"
	CodeAccountLocked         Code = "ACCOUNT_LOCKED"
	CodeMiddlewareOrder       Code = "MIDDLEWARE_ORDER_ERROR"
	CodeInsufficientPerms     Code = "INSUFFICIENT_PERMISSIONS"
	CodeRateLimitExceeded     Code = "RATE_LIMIT_EXCEEDED"
	CodeServerError           Code = "SERVER_ERROR"
)

// Error is the envelope for every middleware failure. Extra fields added via
// With are flattened into the top-level JSON object next to error, message,
// and code.
type Error struct {
	Status  int
	Text    string
	Message string
	Code    Code
	extra   map[string]any
}

// NewError builds an error envelope with the given HTTP status.
func NewError(status int, code Code, text, message string) *Error {
	return &Error{Status: status, Text: text, Message: message, Code: code}
}

// With attaches a contextual field to the envelope. Returns the receiver so
// calls can be chained when building a response.
func (e *Error) With(key string, value any) *Error {
	if e.extra == nil {
		e.extra = make(map[string]any)
	}
	e.extra[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Text
}

// payload flattens the envelope into the wire shape.
func (e *Error) payload() map[string]any {
	body := make(map[string]any, 3+len(e.extra))
	body["error"] = e.Text
	body["message"] = e.Message
	body["code"] = e.Code
	for k, v := range e.extra {
		body[k] = v
	}
	return body
}

// Common envelopes that carry no per-request context.
var (
	ErrTenantRequired = NewError(http.StatusBadRequest, CodeTenantRequired,
		"Tenant required", "Access the application through your organization subdomain.")
	ErrTenantNotResolved = NewError(http.StatusInternalServerError, CodeTenantNotResolved,
		"Tenant not resolved", "Tenant context is missing. This is a middleware ordering bug.")
	ErrDatabaseConnection = NewError(http.StatusInternalServerError, CodeDatabaseConnection,
		"Database connection error", "Could not connect to the tenant database.")
	ErrAuthRequired = NewError(http.StatusUnauthorized, CodeAuthRequired,
		"Authentication required", "Sign in to continue.")
	ErrTokenInvalid = NewError(http.StatusForbidden, CodeTokenInvalid,
		"Invalid token", "The session token is invalid or expired.")
	ErrServer = NewError(http.StatusInternalServerError, CodeServerError,
		"Server error", "An unexpected error occurred.")
)
