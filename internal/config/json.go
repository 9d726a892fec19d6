package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/flagx"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be specified either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ListenAddr    string         `json:"listen_addr"`
	LocalDSN      string         `json:"local_dsn"`
	MinistryCode  string         `json:"ministry_code"`
	JWTSecret     string         `json:"jwt_secret"`
	RemoteTimeout timex.Duration `json:"remote_timeout"`
	GuardedSave   *bool          `json:"guarded_save"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. If no path is given, nothing is loaded.
// Only fields present in the file override the current values.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.LocalDSN != "" {
		cfg.LocalDSN = jc.LocalDSN
	}
	if jc.MinistryCode != "" {
		cfg.MinistryCode = jc.MinistryCode
	}
	if jc.JWTSecret != "" {
		cfg.JWTSecret = jc.JWTSecret
	}
	if jc.RemoteTimeout.Duration > 0 {
		cfg.RemoteTimeout = time.Duration(jc.RemoteTimeout.Duration)
	}
	if jc.GuardedSave != nil {
		cfg.GuardedSave = *jc.GuardedSave
	}
}
