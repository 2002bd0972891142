package ratelimit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-process CounterStore for tests and single-node
// deployments. Semantics mirror the Redis store: per-key timestamped
// entries, lazy pruning on each hit, idle keys reclaimed after one window.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	entries   []entry
	expiresAt time.Time
}

type entry struct {
	score  int64 // unix milliseconds
	member string
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window)}
}

func (s *MemoryStore) Hit(ctx context.Context, key string, now time.Time, windowSize time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMs := now.UnixMilli()
	windowStart := nowMs - windowSize.Milliseconds()

	w, ok := s.windows[key]
	if !ok || now.After(w.expiresAt) {
		w = &window{}
		s.windows[key] = w
	}

	kept := w.entries[:0]
	for _, e := range w.entries {
		if e.score > windowStart {
			kept = append(kept, e)
		}
	}
	w.entries = kept

	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	w.entries = append(w.entries, entry{
		score:  nowMs,
		member: fmt.Sprintf("%d-%s", nowMs, hex.EncodeToString(suffix[:])),
	})
	w.expiresAt = now.Add(windowSize)

	return int64(len(w.entries)), nil
}

func (s *MemoryStore) MostRecent(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || len(w.entries) == 0 {
		return "", false, nil
	}

	latest := w.entries[0]
	for _, e := range w.entries[1:] {
		if e.score >= latest.score {
			latest = e
		}
	}
	return latest.member, true, nil
}

func (s *MemoryStore) Remove(ctx context.Context, key, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok {
		return nil
	}

	for i, e := range w.entries {
		if e.member == member {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			break
		}
	}

	if len(w.entries) == 0 {
		delete(s.windows, key)
	}
	return nil
}
