// Package auth authenticates tenant dashboard requests. It reads the
// session JWT from the "token" cookie, verifies it against the dashboard
// audience, confirms the user row still exists, and attaches the minimal
// user projection to the request context. Session renewal lives in
// pkg/session and runs after this middleware.
package auth
