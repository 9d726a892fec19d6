package models

// ProviderJSONBin is the only remote provider currently supported.
const ProviderJSONBin = "JSONBIN"

// CloudSettings configures the optional remote mirror. The record itself is
// stored local-only so the credential never leaks into the synced document.
type CloudSettings struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	BinID    string `json:"binId"`
}

// Configured reports whether the settings are complete enough to attempt
// remote calls. Partial configuration silently degrades to local-only mode.
func (c *CloudSettings) Configured() bool {
	return c != nil && c.Enabled && c.APIKey != "" && c.BinID != ""
}
