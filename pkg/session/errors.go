package session

import "errors"

var (
	// ErrSessionNotFound indicates no session row exists for the given id
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrOwnerNotFound indicates the session row exists but its owner is gone
	ErrOwnerNotFound = errors.New("session.owner_not_found")
)
