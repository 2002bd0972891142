package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gatewaylab/admitkit/pkg/token"
)

// Manager orchestrates the session lifecycle: issuance, validation with
// sliding expiration, cap enforcement and invalidation.
type Manager struct {
	store  Store
	config Config
	log    *slog.Logger
	now    func() time.Time
}

// New creates a session manager bound to the given store.
// Panics on a nil store: running without persistence is a programming error.
func New(store Store, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}

	m := &Manager{
		store:  store,
		config: DefaultConfig(),
		log:    slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create issues a new session for the owner and returns it together with the
// cookie carrying the raw token. The per-owner cap is enforced before the
// insert, evicting the owner's oldest session when the cap is reached.
// Storage errors abort issuance.
func (m *Manager) Create(ctx context.Context, ownerID uuid.UUID, meta Metadata) (*Session, *http.Cookie, error) {
	raw, err := token.Generate()
	if err != nil {
		return nil, nil, err
	}

	if err := m.enforceSessionLimit(ctx, ownerID); err != nil {
		return nil, nil, err
	}

	now := m.now()
	sess := &Session{
		ID:        token.Hash(raw),
		OwnerID:   ownerID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(m.config.Duration()),
	}

	if err := m.store.Insert(ctx, sess); err != nil {
		return nil, nil, err
	}

	return sess, m.Cookie(raw, sess.ExpiresAt), nil
}

// enforceSessionLimit evicts the owner's oldest sessions inside a single
// transaction until there is room for one more. Not serialized against
// concurrent logins for the same owner, so the cap is best-effort: two
// concurrent creates can both observe a count below the cap. The loop also
// recovers from any transient overshoot on the next sequential login.
func (m *Manager) enforceSessionLimit(ctx context.Context, ownerID uuid.UUID) error {
	if m.config.MaxSessionCount <= 0 {
		return nil
	}

	return m.store.InTransaction(ctx, func(ctx context.Context, tx Store) error {
		count, err := tx.CountForOwner(ctx, ownerID)
		if err != nil {
			return err
		}

		for ; count >= m.config.MaxSessionCount; count-- {
			oldest, err := tx.FindOldestForOwner(ctx, ownerID)
			if err != nil {
				if errors.Is(err, ErrSessionNotFound) {
					return nil
				}
				return err
			}
			if err := tx.Delete(ctx, oldest.ID); err != nil {
				return err
			}
		}

		return nil
	})
}

// Validate resolves a session id (token digest) to a sanitized session and
// owner projection. It deletes expired rows on discovery, slides the expiry
// forward within the refresh threshold and touches the activity timestamp
// when stale.
//
// Validate never fails open: a missing row, missing owner, expired session or
// any storage error all yield (nil, nil, false), indistinguishable from one
// another. Callers treat that as "unauthenticated".
func (m *Manager) Validate(ctx context.Context, sessionID string) (*Session, *Owner, bool) {
	sess, owner, err := m.store.FindWithOwner(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrOwnerNotFound) {
			m.log.ErrorContext(ctx, "session lookup failed", "error", err)
		}
		return nil, nil, false
	}

	now := m.now()

	if sess.IsExpired(now) {
		if err := m.store.InTransaction(ctx, func(ctx context.Context, tx Store) error {
			return tx.Delete(ctx, sess.ID)
		}); err != nil {
			m.log.WarnContext(ctx, "failed to delete expired session", "session_id", sess.ID, "error", err)
		}
		return nil, nil, false
	}

	if sess.NeedsRefresh(now, m.config.RefreshThreshold()) {
		expiresAt := now.Add(m.config.Duration())
		if err := m.store.UpdateExpiry(ctx, sess.ID, expiresAt); err != nil {
			m.log.ErrorContext(ctx, "session refresh failed", "session_id", sess.ID, "error", err)
			return nil, nil, false
		}
		sess.ExpiresAt = expiresAt
	}

	if sess.NeedsActivityTouch(now, m.config.ActivityUpdateThreshold) {
		if err := m.store.UpdateActivity(ctx, sess.ID, now); err != nil {
			m.log.ErrorContext(ctx, "session activity update failed", "session_id", sess.ID, "error", err)
			return nil, nil, false
		}
		sess.UpdatedAt = now
	}

	return sess.sanitized(), owner, true
}

// Invalidate deletes a single session. Idempotent: a missing row or a
// storage error is logged and swallowed, because logout must always appear
// to succeed to the client. The caller issues a blank cookie regardless.
func (m *Manager) Invalidate(ctx context.Context, sessionID string) {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		m.log.WarnContext(ctx, "session delete failed", "session_id", sessionID, "error", err)
	}
}

// InvalidateAll deletes every session the owner holds and returns the count.
// Errors propagate: this path backs security-critical revocation (e.g. after
// a password reset) and must not fail silently.
func (m *Manager) InvalidateAll(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return m.store.DeleteAllForOwner(ctx, ownerID)
}
