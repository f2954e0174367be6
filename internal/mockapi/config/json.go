package config

import (
	"os"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/pulse/internal/flagx"
	"github.com/dmitrijs2005/pulse/internal/timex"
)

// JsonConfig is the on-disk form of Config. Absent fields keep their
// current value.
type JsonConfig struct {
	ListenAddr    *string         `json:"listen_addr"`
	SecretKey     *string         `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	FixedOTP      *string         `json:"fixed_otp"`
	LogLevel      *string         `json:"log_level"`
	LogBackend    *string         `json:"log_backend"`
}

// parseJson overlays config with the JSON file named by -c / -config.
// Read or decode errors panic.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&config.ListenAddr, c.ListenAddr)
	set(&config.SecretKey, c.SecretKey)
	set(&config.FixedOTP, c.FixedOTP)
	set(&config.LogLevel, c.LogLevel)
	set(&config.LogBackend, c.LogBackend)
	if c.TokenValidity != nil {
		config.TokenValidity = c.TokenValidity.Duration
	}
}
