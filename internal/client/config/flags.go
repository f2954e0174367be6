package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pulse/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only the flags listed in doc.go are considered; everything else on the
// command line is filtered out with flagx.FilterArgs. Malformed values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the Pulse API")
	fs.StringVar(&cfg.StoreDSN, "s", cfg.StoreDSN, "key-value store DSN")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "API request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog or zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
