// Package config resolves client configuration once at startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the environment leaves a value unset.
const (
	DefaultBackendURL  = "http://127.0.0.1:5000"
	DefaultTimeout     = 120 * time.Second
	DefaultMaxFileSize = 10 << 20
	DefaultTheme       = "classic"
	DefaultLogFile     = "/tmp/thinkhire.log"
)

// Config holds all configuration values.
type Config struct {
	// Analysis service
	BackendURL string
	Timeout    time.Duration

	// Input limits
	MaxFileSize int64

	// Presentation
	Theme string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BackendURL: strings.TrimRight(getEnv("THINKHIRE_BACKEND_URL", DefaultBackendURL), "/"),
		Timeout:    parseDuration(getEnv("THINKHIRE_TIMEOUT", ""), DefaultTimeout),

		MaxFileSize: parseInt64(getEnv("THINKHIRE_MAX_FILE_SIZE", ""), DefaultMaxFileSize),

		Theme: getEnv("THINKHIRE_THEME", DefaultTheme),

		LogFile:  getEnv("THINKHIRE_LOG_FILE", DefaultLogFile),
		LogLevel: parseLogLevel(getEnv("THINKHIRE_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseDuration(s string, defaultVal time.Duration) time.Duration {
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func parseInt64(s string, defaultVal int64) int64 {
	if s == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
