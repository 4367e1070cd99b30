// Package tenant resolves the customer organization for every dashboard
// request: it extracts the subdomain from the Host header, serves a cached
// snapshot when one is fresh, falls back to the master tenant directory on a
// miss, gates on subscription status, and attaches the tenant to the request
// context for the database registry and handlers downstream.
//
// Resolution order per request:
//
//  1. ResolveSubdomain on the Host header; "" or "www" is a 400.
//  2. Cache lookup by lowercased subdomain (5 minute TTL by default).
//  3. On miss, Provider.GetBySubdomain against the master database; zero
//     rows is a 404.
//  4. Subscription gate: suspended and cancelled tenants get a 403. The
//     gate applies to cached snapshots too.
//  5. Context attachment, cache write, and a detached last-activity touch
//     that never blocks or fails the response.
//
// Two cache backends ship with the package: MemoryCache for single-instance
// deployments and RedisCache when several instances should share the
// directory.
package tenant
