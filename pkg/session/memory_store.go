package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a concurrent in-memory Store for tests and single-process
// deployments. Each operation is individually atomic; InTransaction provides
// no additional isolation since there is no concurrent writer to isolate
// from within a single process holding the store's lock per operation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	owners   map[uuid.UUID]*Owner
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		owners:   make(map[uuid.UUID]*Owner),
	}
}

// AddOwner registers a principal so FindWithOwner can join against it.
func (s *MemoryStore) AddOwner(owner Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[owner.ID] = &owner
}

func (s *MemoryStore) FindWithOwner(ctx context.Context, id string) (*Session, *Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}

	owner, ok := s.owners[sess.OwnerID]
	if !ok {
		return nil, nil, ErrOwnerNotFound
	}

	sessCopy := *sess
	ownerCopy := *owner
	return &sessCopy, &ownerCopy, nil
}

func (s *MemoryStore) Insert(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *sess
	s.sessions[sess.ID] = &stored
	return nil
}

func (s *MemoryStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	sess.ExpiresAt = expiresAt
	return nil
}

func (s *MemoryStore) UpdateActivity(ctx context.Context, id string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	sess.UpdatedAt = updatedAt
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, sess := range s.sessions {
		if sess.OwnerID == ownerID {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CountForOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, sess := range s.sessions {
		if sess.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) FindOldestForOwner(ctx context.Context, ownerID uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var oldest *Session
	for _, sess := range s.sessions {
		if sess.OwnerID != ownerID {
			continue
		}
		// Tie-break on id so eviction order is deterministic for equal
		// creation times.
		if oldest == nil || sess.CreatedAt.Before(oldest.CreatedAt) ||
			(sess.CreatedAt.Equal(oldest.CreatedAt) && sess.ID < oldest.ID) {
			oldest = sess
		}
	}

	if oldest == nil {
		return nil, ErrSessionNotFound
	}

	oldestCopy := *oldest
	return &oldestCopy, nil
}

func (s *MemoryStore) DeleteExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	return nil
}

func (s *MemoryStore) InTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return fn(ctx, s)
}

// Len reports the total number of stored sessions, for tests.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
