// Package session renews dashboard sessions on every authenticated request.
// The renewal expiry comes from a platform setting (cached five minutes,
// with fixed defaults when the settings store is down) and the cookie
// attributes branch on deployment topology via the pure CookiePolicy
// function. Refresh failures are swallowed: the request proceeds and the
// session simply keeps its previous expiry.
package session
