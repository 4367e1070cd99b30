// Package tenantdb routes each request to its tenant's database. A
// process-wide Registry lazily creates one pgx pool per tenant database
// name, guaranteeing a single live pool per database even when concurrent
// requests race on first access. The middleware pulls the resolved tenant
// from the request context, acquires its pool, and exposes it to handlers
// via DB.
//
// Pools stay open until Close/CloseAll; CloseAll is intended to run as a
// server stop hook on SIGINT/SIGTERM.
package tenantdb
