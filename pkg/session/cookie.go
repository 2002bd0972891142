package session

import (
	"net/http"
	"time"
)

// Cookie builds the session cookie binding the raw token. The token digest,
// not the token, is what the store knows as the session id.
func (m *Manager) Cookie(rawToken string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     m.config.CookieName,
		Value:    rawToken,
		Domain:   m.config.CookieDomain,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.config.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	}
}

// BlankCookie builds an immediately expiring cookie for logout responses.
func (m *Manager) BlankCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Domain:   m.config.CookieDomain,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.config.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	}
}
