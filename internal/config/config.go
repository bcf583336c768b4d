package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        slog.Level
	RateLimitRPS    float64
	RateLimitBurst  int
	CORSOrigins     []string
	BreachListFile  string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment. Every malformed
// variable is reported in the returned error.
func Load() (Config, error) {
	var errs *multierror.Error

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		BreachListFile: getEnv("BREACH_LIST_FILE", ""),
		CORSOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
	} else if cfg.RateLimitRPS <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitRPS))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_BURST: %w", err))
	} else if cfg.RateLimitBurst < 1 {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimitBurst))
	}
	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("METRICS_ENABLED: %w", err))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}

	if len(cfg.CORSOrigins) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin"))
	}

	return cfg, errs.ErrorOrNil()
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
