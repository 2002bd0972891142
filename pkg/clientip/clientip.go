package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client's IP address from an HTTP request.
// Priority order:
//  1. X-Forwarded-For (standard proxy header, first valid IP wins)
//  2. X-Real-IP (reverse proxy header)
//  3. RemoteAddr (direct connection fallback)
//
// Returns an empty string when no candidate parses as a valid IP; callers
// decide their own last-resort fallback.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// May contain a comma-separated chain; the first valid entry is
		// the originating client.
		for _, ip := range strings.Split(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// No port component, assume the value is a bare IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string, returning an empty
// string for anything that does not parse.
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
