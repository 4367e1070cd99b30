// Package pg manages the master PostgreSQL database: connection pooling with
// startup retries, health checks, goose schema migrations, and error
// classification helpers used by the directory stores.
package pg
