// Package token signs and verifies the JWT session tokens for both
// authentication realms: dashboard users and superadmins. The realms share
// a signing secret but carry distinct audiences, so tokens are not
// interchangeable between the dashboard and the console.
package token
