// Package config loads runtime configuration for the Pulse CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Pulse API
//	-s string   key-value store DSN (sqlite:<path> or redis://...)
//	-t int      API request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//	-b string   log backend (slog, zap)
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:8080/",
//	  "store_dsn": "sqlite:pulse.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
//
// Fields missing from the JSON file keep their previous values.
package config
