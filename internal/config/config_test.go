package config

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no stray .env
	for _, key := range []string{
		"THINKHIRE_BACKEND_URL", "THINKHIRE_TIMEOUT", "THINKHIRE_MAX_FILE_SIZE",
		"THINKHIRE_THEME", "THINKHIRE_LOG_FILE", "THINKHIRE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("THINKHIRE_BACKEND_URL", "https://analysis.example.com/")
	t.Setenv("THINKHIRE_TIMEOUT", "90s")
	t.Setenv("THINKHIRE_MAX_FILE_SIZE", "2048")
	t.Setenv("THINKHIRE_THEME", "neon")
	t.Setenv("THINKHIRE_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "https://analysis.example.com", cfg.BackendURL, "trailing slash trimmed")
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseDurationFallsBack(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", DefaultTimeout},
		{"soon", DefaultTimeout},
		{"-5s", DefaultTimeout},
		{"1m", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDuration(tt.in, DefaultTimeout))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"Warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var console, file bytes.Buffer
	logger := SetupLoggerWithWriters(&console, &file, slog.LevelInfo)

	logger.Info("submission finished", "phase", "succeeded")
	logger.Debug("hidden")

	assert.Contains(t, console.String(), "submission finished")
	assert.Contains(t, file.String(), `"phase":"succeeded"`)
	assert.NotContains(t, console.String(), "hidden")
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thinkhire.log")
	var console bytes.Buffer

	logger, cleanup := SetupLogger(path, slog.LevelInfo, &console)
	logger.Info("hello")
	require.NoError(t, cleanup())

	assert.FileExists(t, path)
	assert.Contains(t, console.String(), "hello")
}
