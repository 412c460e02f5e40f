// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Location is the zone whose calendar days the appointment date filters
	// use. Set APP_TIMEZONE to an IANA name; defaults to UTC. "Local" is
	// rejected.
	Location *time.Location

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// Telemetry configures OpenTelemetry tracing.
	Telemetry Telemetry
}

// Telemetry holds the OTEL_* settings. Tracing is off unless OTEL_ENABLED is true.
type Telemetry struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	SampleRatio  float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, joined
// with any values that fail to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Telemetry: Telemetry{
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "medspa-api"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
	}

	var missing []string
	var errs []error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	// The zone name is handed to Postgres, which knows nothing of "Local".
	tz := getEnv("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	case tz == "Local":
		errs = append(errs, errors.New("APP_TIMEZONE: must be an IANA zone name such as UTC or America/New_York, not Local"))
	}
	cfg.Location = loc

	cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES: %w", err))
	}

	cfg.Telemetry.Enabled, err = strconv.ParseBool(getEnv("OTEL_ENABLED", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("OTEL_ENABLED: %w", err))
	}

	cfg.Telemetry.SampleRatio, err = strconv.ParseFloat(getEnv("OTEL_SAMPLING_RATIO", "1"), 64)
	if err == nil && (cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1) {
		err = errors.New("must be between 0 and 1")
	}
	if err != nil {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLING_RATIO: %w", err))
	}

	if len(missing) > 0 {
		errs = append([]error{fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))}, errs...)
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
