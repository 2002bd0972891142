package session

import (
	"net/http"

	"github.com/gatewaylab/admitkit/pkg/token"
)

// Middleware resolves the request's session cookie into an identity on the
// context. Requests without a valid session pass through unauthenticated;
// handlers decide whether that matters.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, owner, ok := m.resolve(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), sess, owner)))
	})
}

// RequireAuth rejects requests without a valid session. The response is a
// generic 401 regardless of whether the session expired, never existed or
// the store was unreachable.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, owner, ok := m.resolve(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), sess, owner)))
	})
}

func (m *Manager) resolve(r *http.Request) (*Session, *Owner, bool) {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil || c.Value == "" {
		return nil, nil, false
	}

	return m.Validate(r.Context(), token.Hash(c.Value))
}
