package config

import (
	"testing"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "gracegather.db", c.LocalDSN)
	assert.Equal(t, "GRACE", c.MinistryCode)
	assert.Equal(t, 10*time.Second, c.RemoteTimeout)
	assert.False(t, c.GuardedSave)
}

func TestDefaultSeedUsers(t *testing.T) {
	users := DefaultSeedUsers()
	require.Len(t, users, 2)

	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, models.StatusApproved, users[0].Status)

	assert.Equal(t, "pastor", users[1].Username)
	assert.Equal(t, models.RolePastor, users[1].Role)
	assert.Equal(t, models.StatusApproved, users[1].Status)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "GRACE", cfg.MinistryCode)
	assert.Len(t, cfg.SeedUsers, 2)
}
