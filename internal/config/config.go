package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultTimezone       = "Asia/Almaty"
	defaultJWTTTL         = "24h"
	defaultWindowDays     = 30
	defaultProtectionFee  = 0.0
	defaultJWTSecretValue = "change-me-jwt-secret"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// VenueTimezone is the single zone all calendar dates are interpreted in.
	VenueTimezone *time.Location

	// BookingWindowDays bounds how far ahead availability is resolved.
	BookingWindowDays int

	// ProtectionPlanFee is the flat fee offered per request; <= 0 disables the plan.
	ProtectionPlanFee float64

	CORSAllowedOrigins string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", defaultPort),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:          strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecretValue)),
		CORSAllowedOrigins: strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(getEnv("VENUE_TIMEZONE", defaultTimezone))
	cfg.VenueTimezone, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid VENUE_TIMEZONE value %q: %w", tz, err)
	}

	cfg.BookingWindowDays, err = parseIntEnv("BOOKING_WINDOW_DAYS", defaultWindowDays)
	if err != nil {
		return nil, err
	}
	if cfg.BookingWindowDays <= 0 {
		return nil, fmt.Errorf("BOOKING_WINDOW_DAYS must be > 0")
	}

	cfg.ProtectionPlanFee, err = parseFloatEnv("PROTECTION_PLAN_FEE", defaultProtectionFee)
	if err != nil {
		return nil, err
	}

	if isProdLike(os.Getenv("APP_ENV")) && cfg.JWTSecret == defaultJWTSecretValue {
		return nil, fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return cfg, nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseFloatEnv(name string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
