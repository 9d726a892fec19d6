// Package config assembles runtime settings for the GraceGather commands.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults -> environment -> JSON file (-c/-config) -> command-line flags.
package config

import (
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// Config holds runtime settings shared by the server and the CLI.
//
// MinistryCode is the shared secret required to self-register; SeedUsers are
// written into the user collection the first time it is loaded. Both were
// hard-coded in the observed behavior and are injected here so tests can
// replace them.
type Config struct {
	ListenAddr    string
	LocalDSN      string
	MinistryCode  string
	JWTSecret     string
	RemoteTimeout time.Duration
	GuardedSave   bool
	SeedUsers     []models.User
}

// LoadDefaults populates c with sensible defaults, including the two
// built-in approved accounts.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.LocalDSN = "gracegather.db"
	c.MinistryCode = "GRACE"
	c.JWTSecret = "change-me-in-production"
	c.RemoteTimeout = 10 * time.Second
	c.GuardedSave = false
	c.SeedUsers = DefaultSeedUsers()
}

// DefaultSeedUsers returns the built-in accounts the user collection is
// seeded with when it has never been created.
func DefaultSeedUsers() []models.User {
	now := time.Now().UTC()
	return []models.User{
		{
			Username: "admin",
			Password: "amen",
			Role:     models.RoleAdmin,
			Name:     "Senior Pastor (Admin)",
			Status:   models.StatusApproved,
			JoinedAt: now,
		},
		{
			Username: "pastor",
			Password: "amen",
			Role:     models.RolePastor,
			Name:     "Associate Pastor",
			Status:   models.StatusApproved,
			JoinedAt: now,
		},
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
