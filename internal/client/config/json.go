package config

import (
	"os"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/pulse/internal/flagx"
	"github.com/dmitrijs2005/pulse/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from "empty" so a partial file only overrides what it
// names.
type JsonConfig struct {
	BaseURL        *string         `json:"base_url"`
	StoreDSN       *string         `json:"store_dsn"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	LogBackend     *string         `json:"log_backend"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. Without such a flag it does nothing. Read or decode errors
// panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
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

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.StoreDSN != nil {
		cfg.StoreDSN = *jc.StoreDSN
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
}
