// Package logger builds slog loggers with context-aware attribute injection.
//
// The factory wires a JSON or text handler and wraps it in a decorator that
// runs registered ContextExtractor functions on every record. Packages that
// attach identifiers to the request context (tenant, superadmin) export an
// extractor so those identifiers show up on every log line without the call
// sites passing them explicitly.
package logger
