// Package config handles configuration for the mock API server, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the mock Pulse API.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     the default outside development.
//   - TokenValidity: lifetime of issued session tokens.
//   - FixedOTP: code issued to every signup; empty means a random code.
//   - LogLevel / LogBackend: see logging.New.
type Config struct {
	ListenAddr    string
	SecretKey     string
	TokenValidity time.Duration
	FixedOTP      string
	LogLevel      string
	LogBackend    string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.FixedOTP = "123456"
	c.LogLevel = "info"
	c.LogBackend = "zap"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
