package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/pulse/internal/buildinfo"
	"github.com/dmitrijs2005/pulse/internal/client/cli"
	"github.com/dmitrijs2005/pulse/internal/client/config"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// stdout belongs to the REPL.
	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
