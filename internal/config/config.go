package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings, populated from environment variables (with an
// optional .env file loaded first).
type Config struct {
	// DataDir is the shared directory of member CSV files.
	DataDir string
	// ExportDir is where export artifacts are written; defaults to DataDir.
	ExportDir string

	LogLevel  string
	LogFormat string

	// OpenWeather collaborator configuration. The API key is only required
	// by the collect flow; the batch report runs without it.
	OpenWeatherAPIKey  string
	OpenWeatherTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is loaded first when present;
// its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:           envOrDefault("WEATHER_DATA_DIR", "data"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "text"),
		OpenWeatherAPIKey: apiKeyWithFallback("OPENWEATHER_API_KEY", "OPENWEATHER_API_KEY_BACKUP"),
	}
	cfg.ExportDir = envOrDefault("WEATHER_EXPORT_DIR", cfg.DataDir)

	timeoutStr := envOrDefault("OPENWEATHER_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid OPENWEATHER_TIMEOUT")
	}
	cfg.OpenWeatherTimeout = timeout

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if cfg.DataDir == "" {
		return nil, errors.New("WEATHER_DATA_DIR is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// apiKeyWithFallback returns the primary key's value, or the backup key's
// when the primary is unset.
func apiKeyWithFallback(primary, backup string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(backup)
}

// MaskKey masks a secret for logging: first and last four characters
// visible, everything between starred. Short keys are fully starred.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
