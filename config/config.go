package config

import (
	"os"
	"strconv"
)

// Config aggregates runtime configuration values.
type Config struct {
	// Building is the path of the building file. Empty means the built-in
	// reference topology.
	Building       string
	Logging        LoggingConfig
	MetricsEnabled bool
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Building: os.Getenv("NAVROUTE_BUILDING"),
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		MetricsEnabled: parseBoolWithDefault("NAVROUTE_METRICS", false),
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
