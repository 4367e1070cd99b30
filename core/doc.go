// Package core defines the JSON wire contract shared by every middleware and
// handler in the platform: a fixed error envelope with a machine-readable
// code, plus small helpers for writing JSON responses.
//
// Every middleware failure is a hard stop. The helpers here write the
// response and the caller returns without invoking the next handler, so a
// 4xx/5xx from one stage is never followed by another stage.
//
// # Error envelope
//
// All errors share one shape:
//
//	{
//	  "error":   "Tenant suspended",
//	  "message": "This account has been suspended. Contact support.",
//	  "code":    "TENANT_SUSPENDED",
//	  ...contextual fields
//	}
//
// Contextual fields (subdomain, retry_after, required permissions) are
// flattened into the top-level object via Error.With.
package core
