package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
// A zero value disables limiting.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// DatabaseConfig holds the connection string and pool sizing of the contacts store.
type DatabaseConfig struct {
	URL               string
	MaxConns          int32
	IdleTimeout       time.Duration
	AcquireTimeout    time.Duration
	HealthCheckPeriod time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Database         DatabaseConfig
	Port             string
	LogLevel         string
	AutoMigrate      bool
	RateLimitContact RateLimitConfig
}

// Pool defaults applied when the environment leaves them unset.
const (
	DefaultMaxConns          = 20
	DefaultIdleTimeout       = 30 * time.Second
	DefaultAcquireTimeout    = 2 * time.Second
	DefaultHealthCheckPeriod = 30 * time.Second
)

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:               os.Getenv("DATABASE_URL"),
			HealthCheckPeriod: DefaultHealthCheckPeriod,
		},
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", strconv.Itoa(DefaultMaxConns)))
	if err != nil || maxConns <= 0 {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %q", os.Getenv("DB_MAX_CONNS"))
	}
	cfg.Database.MaxConns = int32(maxConns)

	if cfg.Database.IdleTimeout, err = parseDuration("DB_IDLE_TIMEOUT", DefaultIdleTimeout); err != nil {
		return nil, err
	}
	if cfg.Database.AcquireTimeout, err = parseDuration("DB_ACQUIRE_TIMEOUT", DefaultAcquireTimeout); err != nil {
		return nil, err
	}

	cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTO_MIGRATE value: %w", err)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_CONTACT", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}
	cfg.RateLimitContact = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	if strings.EqualFold(strings.TrimSpace(value), "off") {
		return RateLimitConfig{}, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s value: %q", key, raw)
	}
	return d, nil
}
