package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

// Limiter performs sliding-window admission checks against a shared
// CounterStore. Stateless apart from the store handle, so one instance
// serves all keys and policies concurrently.
type Limiter struct {
	store CounterStore
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithLogger sets the logger used to report degraded-mode operation.
func WithLogger(log *slog.Logger) Option {
	return func(l *Limiter) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClock replaces the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a limiter backed by the given counter store.
func New(store CounterStore, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	l := &Limiter{
		store: store,
		log:   slog.Default(),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Check decides whether one more hit on key fits the policy's quota.
//
// A malformed policy surfaces as an error: configuration mistakes must fail
// fast, never be misread. Any counter store failure instead fails open: the
// request is reported allowed with the full quota remaining and the outage
// is logged at error level, because a throttling outage must never take
// down the protected service.
func (l *Limiter) Check(ctx context.Context, key string, policy Policy) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	window, _ := ParseWindow(policy.Window)
	now := l.now()

	hits, err := l.store.Hit(ctx, key, now, window)
	if err != nil {
		l.log.ErrorContext(ctx, "rate limit store unavailable, failing open",
			"key", key, "error", err)
		return &Result{
			Allowed:   true,
			Limit:     policy.Requests,
			Remaining: policy.Requests,
			ResetAt:   now.Add(window),
			TotalHits: 0,
		}, nil
	}

	return &Result{
		Allowed:   hits <= int64(policy.Requests),
		Limit:     policy.Requests,
		Remaining: max(0, policy.Requests-int(hits)),
		ResetAt:   now.Add(window),
		TotalHits: hits,
	}, nil
}

// Decrement removes the most recent hit under key, compensating for an
// outcome that policy says should not have counted. Best-effort: a missing
// entry or an unreachable store is logged and ignored, since bookkeeping
// must never fail the response pipeline.
func (l *Limiter) Decrement(ctx context.Context, key string) {
	member, found, err := l.store.MostRecent(ctx, key)
	if err != nil {
		l.log.WarnContext(ctx, "rate limit decrement skipped, store unavailable",
			"key", key, "error", err)
		return
	}
	if !found {
		return
	}

	if err := l.store.Remove(ctx, key, member); err != nil {
		l.log.WarnContext(ctx, "rate limit decrement failed",
			"key", key, "error", err)
	}
}
