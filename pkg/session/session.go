package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated browser or client context. ID is the
// SHA-256 digest of the raw token; the token itself lives only in the cookie.
type Session struct {
	ID        string    `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Owner is the sanitized projection of the authenticated principal returned
// by validation. Credential material never appears here.
type Owner struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Metadata carries immutable request attributes captured at session creation.
type Metadata struct {
	UserAgent string
	IPAddress string
}

// IsExpired reports whether the session has expired as of now.
func (s *Session) IsExpired(now time.Time) bool {
	return s != nil && !now.Before(s.ExpiresAt)
}

// NeedsRefresh reports whether the session is close enough to expiry that
// its lifetime should be slid forward.
func (s *Session) NeedsRefresh(now time.Time, threshold time.Duration) bool {
	return s != nil && !now.Before(s.ExpiresAt.Add(-threshold))
}

// NeedsActivityTouch reports whether enough time has passed since the last
// recorded activity to justify another write.
func (s *Session) NeedsActivityTouch(now time.Time, threshold time.Duration) bool {
	return s != nil && now.Sub(s.UpdatedAt) > threshold
}

// sanitized returns a copy safe to hand to callers: request metadata captured
// at creation stays internal.
func (s *Session) sanitized() *Session {
	return &Session{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
