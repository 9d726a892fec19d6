package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present.
//
// Recognized variables:
//
//	GRACE_LISTEN_ADDR     address for the HTTP server
//	GRACE_LOCAL_DSN       path of the local sqlite store
//	GRACE_MINISTRY_CODE   registration shared secret
//	GRACE_JWT_SECRET      HS256 signing secret for API tokens
//	GRACE_REMOTE_TIMEOUT  per-call timeout for bin requests, e.g. "10s"
//	GRACE_GUARDED_SAVE    "true" enables revision-guarded remote saves
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.ListenAddr = getEnv("GRACE_LISTEN_ADDR", cfg.ListenAddr)
	cfg.LocalDSN = getEnv("GRACE_LOCAL_DSN", cfg.LocalDSN)
	cfg.MinistryCode = getEnv("GRACE_MINISTRY_CODE", cfg.MinistryCode)
	cfg.JWTSecret = getEnv("GRACE_JWT_SECRET", cfg.JWTSecret)

	if v := os.Getenv("GRACE_REMOTE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RemoteTimeout = d
		}
	}
	if v := os.Getenv("GRACE_GUARDED_SAVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.GuardedSave = b
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
