package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store defines the relational persistence operations the Manager consumes.
// Implementations must be safe for concurrent use; all consistency is pushed
// down to store-level transactions rather than in-process locking.
type Store interface {
	// FindWithOwner retrieves a session joined with its owner.
	// Returns ErrSessionNotFound when the session is absent and
	// ErrOwnerNotFound when the session exists but the owner is gone.
	FindWithOwner(ctx context.Context, id string) (*Session, *Owner, error)

	// Insert stores a new session row
	Insert(ctx context.Context, sess *Session) error

	// UpdateExpiry advances the absolute expiry of a session
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// UpdateActivity advances only the last-activity timestamp
	UpdateActivity(ctx context.Context, id string, updatedAt time.Time) error

	// Delete removes a session by id. Deleting a missing row is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteAllForOwner removes every session of an owner, returning the count
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// CountForOwner returns the number of sessions an owner currently holds
	CountForOwner(ctx context.Context, ownerID uuid.UUID) (int, error)

	// FindOldestForOwner returns the owner's session with the smallest
	// creation time, or ErrSessionNotFound if the owner has none.
	FindOldestForOwner(ctx context.Context, ownerID uuid.UUID) (*Session, error)

	// DeleteExpired removes all rows whose expiry has passed. Intended for
	// background sweeps; validation already deletes expiry on discovery.
	DeleteExpired(ctx context.Context) error

	// InTransaction runs fn against a transactional view of the store,
	// committing on nil and rolling back on error.
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
