// Package clientip extracts the real client address behind the proxies this
// platform deploys behind: the Cloudflare tunnel in front of the dashboard
// and a conventional reverse proxy elsewhere.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client's IP address. Header priority matches the
// deployment topology: CF-Connecting-IP from the tunnel, then
// X-Forwarded-For, then X-Real-IP, then the socket address.
func GetIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for part := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes a candidate address; spoofable garbage in
// a header must never end up in the audit log.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
