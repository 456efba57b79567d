package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultListenAddr   = ":8000"
	defaultDatabaseURL  = "carsharex.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTTTL       = "24h"
	defaultAppEnv       = "development"
	defaultLogLevel     = "info"
)

type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      envOrDefault("APP_ENV", defaultAppEnv),
		ListenAddr:  envOrDefault("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL: envOrDefault("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   envOrDefault("JWT_SECRET", defaultJWTSecret),
		LogLevel:    envOrDefault("LOG_LEVEL", defaultLogLevel),
	}

	ttl, err := time.ParseDuration(envOrDefault("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
