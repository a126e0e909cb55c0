package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lookdine/lookdine/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// specified as strings like "3s" and parsed with time.ParseDuration; empty
// strings leave the corresponding Config field untouched.
type JsonConfig struct {
	APIBaseURL          string `json:"api_base_url"`
	RequestTimeout      string `json:"request_timeout"`
	OnlineCheckInterval string `json:"online_check_interval"`
	DatabasePath        string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known non-empty fields into the provided Config.
//   - Panics on read, unmarshal or duration-parse errors (caller should
//     recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != "" {
		cfg.RequestTimeout = mustParseDuration(jc.RequestTimeout)
	}
	if jc.OnlineCheckInterval != "" {
		cfg.OnlineCheckInterval = mustParseDuration(jc.OnlineCheckInterval)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
