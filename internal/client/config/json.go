package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	APIBaseURL     *string   `json:"api_base_url"`
	DatabasePath   *string   `json:"database_path"`
	RequestTimeout *Duration `json:"request_timeout"`
	LogLevel       *string   `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. It does nothing when no file is given and panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := configFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
