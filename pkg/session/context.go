package session

import (
	"context"

	"github.com/google/uuid"
)

type sessionContextKey struct{}

type ownerContextKey struct{}

// WithIdentity adds a validated session and its owner to the context
func WithIdentity(ctx context.Context, sess *Session, owner *Owner) context.Context {
	ctx = context.WithValue(ctx, sessionContextKey{}, sess)
	return context.WithValue(ctx, ownerContextKey{}, owner)
}

// FromContext retrieves the session from the context
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session)
	return sess, ok
}

// OwnerFromContext retrieves the owner from the context
func OwnerFromContext(ctx context.Context) (*Owner, bool) {
	owner, ok := ctx.Value(ownerContextKey{}).(*Owner)
	return owner, ok
}

// OwnerIDFromContext retrieves the authenticated principal's id from the context
func OwnerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	owner, ok := OwnerFromContext(ctx)
	if !ok || owner == nil {
		return uuid.Nil, false
	}
	return owner.ID, true
}
