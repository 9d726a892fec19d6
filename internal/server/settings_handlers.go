package server

import (
	"encoding/json"
	"net/http"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// SettingsHandler manages the cloud sync configuration. Admin only; the
// record is stored local-only and the credential is masked on reads.
type SettingsHandler struct {
	Gateway *gateway.Gateway
}

type cloudSettingsResponse struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider"`
	BinID     string `json:"binId"`
	HasAPIKey bool   `json:"hasApiKey"`
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.Gateway.CloudSettings(r.Context())
	if s == nil {
		writeJSON(w, http.StatusOK, cloudSettingsResponse{})
		return
	}
	writeJSON(w, http.StatusOK, cloudSettingsResponse{
		Enabled:   s.Enabled,
		Provider:  s.Provider,
		BinID:     s.BinID,
		HasAPIKey: s.APIKey != "",
	})
}

func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var s models.CloudSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if s.Enabled && (s.APIKey == "" || s.BinID == "") {
		writeError(w, http.StatusBadRequest, "apiKey and binId required when enabled")
		return
	}
	if s.Provider == "" {
		s.Provider = models.ProviderJSONBin
	}

	if err := h.Gateway.SaveCloudSettings(r.Context(), &s); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
