package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewaylab/admitkit/pkg/config"
)

type testConfig struct {
	Name     string        `env:"TEST_CFG_NAME" envDefault:"fallback"`
	Count    int           `env:"TEST_CFG_COUNT" envDefault:"3"`
	Interval time.Duration `env:"TEST_CFG_INTERVAL" envDefault:"5m"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, 5*time.Minute, cfg.Interval)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_NAME", "from-env")
		t.Setenv("TEST_CFG_COUNT", "42")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 42, cfg.Count)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("TEST_CFG_COUNT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
