package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithLogger sets the logger used for degraded-mode and swallowed-error
// reporting. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock replaces the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithMaxSessionCount sets the per-owner concurrent session cap
func WithMaxSessionCount(n int) Option {
	return func(m *Manager) {
		m.config.MaxSessionCount = n
	}
}
