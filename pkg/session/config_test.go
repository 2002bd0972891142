package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gatewaylab/admitkit/pkg/session"
)

func TestConfig_Durations(t *testing.T) {
	t.Parallel()

	cfg := session.Config{DurationDays: 30, RefreshThresholdDays: 7}
	assert.Equal(t, 30*24*time.Hour, cfg.Duration())
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshThreshold())
}

func TestConfig_SecureCookies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env    string
		secure bool
	}{
		{"production", true},
		{"development", false},
		{"", false},
		{"staging", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("env "+tt.env, func(t *testing.T) {
			t.Parallel()
			cfg := session.Config{Environment: tt.env}
			assert.Equal(t, tt.secure, cfg.SecureCookies())
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Equal(t, "session_token", cfg.CookieName)
	assert.Equal(t, 5, cfg.MaxSessionCount)
	assert.Equal(t, 5*time.Minute, cfg.ActivityUpdateThreshold)
	assert.False(t, cfg.SecureCookies())
}
