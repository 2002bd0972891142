package session

import "time"

// Config holds session lifecycle configuration. Durations are expressed in
// whole days to match the deployment environment's conventions.
type Config struct {
	// DurationDays is the absolute session lifetime granted at creation and
	// on each sliding refresh.
	DurationDays int `env:"SESSION_DURATION_DAYS" envDefault:"30"`

	// RefreshThresholdDays is how close to expiry a session must be before
	// validation slides its lifetime forward.
	RefreshThresholdDays int `env:"SESSION_REFRESH_THRESHOLD_DAYS" envDefault:"7"`

	// MaxSessionCount caps concurrent sessions per owner (best-effort under
	// concurrent logins).
	MaxSessionCount int `env:"SESSION_MAX_COUNT" envDefault:"5"`

	// CookieName is the name of the session cookie
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_token"`

	// CookieDomain scopes the session cookie (empty for host-only)
	CookieDomain string `env:"API_DOMAIN"`

	// Environment controls the cookie Secure flag ("production" enables it)
	Environment string `env:"NODE_ENV" envDefault:"development"`

	// ActivityUpdateThreshold is the minimum time between activity writes,
	// keeping validation from writing on every request.
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		DurationDays:            30,
		RefreshThresholdDays:    7,
		MaxSessionCount:         5,
		CookieName:              "session_token",
		Environment:             "development",
		ActivityUpdateThreshold: 5 * time.Minute,
	}
}

// Duration returns the session lifetime as a duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.DurationDays) * 24 * time.Hour
}

// RefreshThreshold returns the sliding-refresh window as a duration.
func (c Config) RefreshThreshold() time.Duration {
	return time.Duration(c.RefreshThresholdDays) * 24 * time.Hour
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c Config) SecureCookies() bool {
	return c.Environment == "production"
}
