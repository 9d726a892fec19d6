package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// settingsKey is the local entry holding the cloud settings record. Stored
// local-only so the credential never appears in the synced document.
const settingsKey = "gracegather_cloud_settings"

// LoadLocal reads a local-only record into out without ever touching the
// remote store. It reports whether a readable value existed; out is left
// untouched otherwise. Used for records that must not be mirrored, such as
// the session and the cloud settings themselves.
func (g *Gateway) LoadLocal(ctx context.Context, key string, out any) bool {
	raw, err := g.local.Get(ctx, key)
	if err != nil {
		g.log.Warn(ctx, "local read failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := decodeInto(raw, out); err != nil {
		// Corrupted entries are treated as absent, not as errors.
		g.log.Warn(ctx, "local value unreadable", "key", key, "error", err)
		return false
	}
	return true
}

// SaveLocal writes a local-only record, bypassing the remote mirror.
func (g *Gateway) SaveLocal(ctx context.Context, key string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return g.local.Set(ctx, key, raw)
}

// DeleteLocal removes a local-only record. Deleting an absent key is a no-op.
func (g *Gateway) DeleteLocal(ctx context.Context, key string) error {
	return g.local.Delete(ctx, key)
}

// ClearLocalPrefix deletes every local record whose key starts with prefix.
// The remote document is untouched.
func (g *Gateway) ClearLocalPrefix(ctx context.Context, prefix string) error {
	all, err := g.local.List(ctx)
	if err != nil {
		return err
	}
	for key := range all {
		if strings.HasPrefix(key, prefix) {
			if err := g.local.Delete(ctx, key); err != nil {
				return err
			}
		}
	}
	return nil
}

// CloudSettings returns the stored cloud settings, or nil if none are saved.
func (g *Gateway) CloudSettings(ctx context.Context) *models.CloudSettings {
	var s models.CloudSettings
	if !g.LoadLocal(ctx, settingsKey, &s) {
		return nil
	}
	return &s
}

// SaveCloudSettings persists the cloud settings record locally.
func (g *Gateway) SaveCloudSettings(ctx context.Context, s *models.CloudSettings) error {
	return g.SaveLocal(ctx, settingsKey, s)
}

// cloudSettings is CloudSettings with a non-nil result for internal use.
func (g *Gateway) cloudSettings(ctx context.Context) *models.CloudSettings {
	if s := g.CloudSettings(ctx); s != nil {
		return s
	}
	return &models.CloudSettings{}
}
