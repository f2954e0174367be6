package config

import "time"

// Config holds runtime settings for the Pulse CLI.
//
// Fields:
//   - BaseURL: root URL of the Pulse API (e.g. "http://127.0.0.1:8080/").
//   - StoreDSN: location of the client key-value store, either
//     "sqlite:<path>" or "redis://host:port/db".
//   - RequestTimeout: per-request timeout for API calls.
//   - LogLevel / LogBackend: see logging.New.
type Config struct {
	BaseURL        string
	StoreDSN       string
	RequestTimeout time.Duration
	LogLevel       string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/"
	c.StoreDSN = "sqlite:pulse.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
