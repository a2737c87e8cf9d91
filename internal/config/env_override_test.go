package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("BSVIZ_SPEED sets playback speed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BSVIZ_SPEED", "1.5")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 1.5, cfg.Playback.Speed)
	})

	t.Run("unparsable BSVIZ_SPEED is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BSVIZ_SPEED", "fast")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 1.0, cfg.Playback.Speed)
	})

	t.Run("BSVIZ_THEME and BSVIZ_LOG_DIR", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BSVIZ_THEME", "dark")
		t.Setenv("BSVIZ_LOG_DIR", "/tmp/bsviz-logs")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.UI.Theme)
		assert.Equal(t, "/tmp/bsviz-logs", cfg.Logging.Dir)
	})

	t.Run("BSVIZ_DEBUG toggles debug mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BSVIZ_DEBUG", "true")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("BSVIZ_SEED fixes the generator", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BSVIZ_SEED", "1234")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(1234), cfg.Array.Seed)
	})

	t.Run("empty env leaves defaults", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})
}
