package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.True(t, cfg.Color)
		assert.Equal(t, 32, cfg.Index.Degree)
		assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\ncolor: false\nindex:\n  degree: 4\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel())
		assert.False(t, cfg.Color)
		assert.Equal(t, 4, cfg.Index.Degree)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("CHARACTERISTIC_LOG_LEVEL", "warn")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel())
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "log.level")
	})

	t.Run("invalid degree", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("index:\n  degree: 1\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "index.degree")
	})
}
