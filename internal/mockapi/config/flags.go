package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pulse/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address (e.g., ":8080")
//	-k string   token HMAC secret key
//	-t int      token validity, minutes
//	-o string   fixed one-time code ("" for random codes)
//	-l string   log level
//	-b string   log backend (slog or zap)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-t", "-o", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "secret key")
	validity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.FixedOTP, "o", config.FixedOTP, "fixed one-time code")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*validity) * time.Minute
}
