package ratelimit

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatewaylab/admitkit/pkg/clientip"
)

const keyPrefix = "rate_limit"

// KeyFunc derives the counter key for a request. Derivation must be
// deterministic and independent of query parameters or body, so one client
// hitting one route always lands on the same counter.
type KeyFunc func(*http.Request) string

// DefaultKey derives "rate_limit:<clientAddress>:<routePath>".
//
// The client address falls back through the proxy-reported address, the
// remote socket address and finally "unknown". The route path prefers the
// matched route template (so /users/42 and /users/43 share a counter) and
// falls back to the raw request path.
func DefaultKey(r *http.Request) string {
	return keyPrefix + ":" + clientAddress(r) + ":" + routePath(r)
}

func clientAddress(r *http.Request) string {
	if ip := clientip.GetIP(r); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func routePath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if r.URL != nil && r.URL.Path != "" {
		return r.URL.Path
	}
	return "unknown"
}
