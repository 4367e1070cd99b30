package tenant

import "strings"

// ResolveSubdomain extracts the candidate tenant subdomain from a Host
// header value. Returns the first label, case preserved, when the host has
// at least three dot-separated labels; otherwise returns "". A port suffix
// is ignored, and localhost/127.0.0.1 always resolve to "" so local
// development never carries a tenant.
//
// Callers are responsible for lowercasing before using the result as a
// cache or lookup key.
func ResolveSubdomain(host string) string {
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	if host == "localhost" || host == "127.0.0.1" {
		return ""
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}

	return parts[0]
}
