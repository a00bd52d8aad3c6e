package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadServeConfig_Defaults(t *testing.T) {
	path := writeTempConfig(t, "")

	cfg, err := loadServeConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultServeConfig(), cfg)
}

func TestLoadServeConfig_Overlay(t *testing.T) {
	path := writeTempConfig(t, `
addr = "127.0.0.1:9000"
warmup_steps = 500
warmup_seed = 42
`)

	cfg, err := loadServeConfig(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)
	require.Equal(t, 500, cfg.WarmupSteps)
	require.Equal(t, int64(42), cfg.WarmupSeed)
	// Unset keys keep their defaults.
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadServeConfig_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadServeConfig(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
	})

	t.Run("empty addr", func(t *testing.T) {
		path := writeTempConfig(t, `addr = "  "`)
		_, err := loadServeConfig(path)
		require.ErrorContains(t, err, "addr must not be empty")
	})

	t.Run("negative warmup", func(t *testing.T) {
		path := writeTempConfig(t, `warmup_steps = -5`)
		_, err := loadServeConfig(path)
		require.ErrorContains(t, err, "warmup_steps")
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeTempConfig(t, `addr = [`)
		_, err := loadServeConfig(path)
		require.Error(t, err)
	})
}

func TestStrategyFor(t *testing.T) {
	for _, name := range []string{"uniform", "degree", "frontier"} {
		s, err := strategyFor(name)
		require.NoError(t, err)
		require.NotNil(t, s)
	}
	_, err := strategyFor("quantum")
	require.ErrorContains(t, err, "unknown strategy")
}

func TestStatusChecksPass(t *testing.T) {
	for _, c := range statusChecks {
		require.NoError(t, c.run(), "check %q", c.name)
	}
}
