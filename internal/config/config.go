package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "roombooking.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// APIKeyHash is the bcrypt hash the token endpoint compares client keys
	// against. Empty means no key ever matches.
	APIKeyHash string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:        getenv("ADDR", defaultAddr),
		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   getenv("JWT_SECRET", defaultJWTSecret),
		APIKeyHash:  strings.TrimSpace(os.Getenv("API_KEY_HASH")),
	}

	ttlRaw := getenv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttlRaw, err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
