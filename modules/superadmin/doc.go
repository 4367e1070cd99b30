// Package superadmin mounts the console API for operating the tenant
// fleet: listing tenants, suspending and reactivating subscriptions, and
// editing platform settings. Every route runs behind superadmin
// authentication, per-admin rate limiting, and audit capture; mutating
// groups add permission gates on top.
package superadmin
