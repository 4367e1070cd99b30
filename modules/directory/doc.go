// Package directory implements the master-database stores: the tenant
// directory, the master user and superadmin account tables, platform
// settings, and the audit log. Each store satisfies the provider interface
// of the middleware package it backs, so the middleware never sees SQL.
//
// All stores share the master pgx pool. Per-tenant databases are reached
// through pkg/tenantdb, never through this package.
package directory
