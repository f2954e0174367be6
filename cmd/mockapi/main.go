package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/pulse/internal/buildinfo"
	"github.com/dmitrijs2005/pulse/internal/logging"
	"github.com/dmitrijs2005/pulse/internal/mockapi"
	"github.com/dmitrijs2005/pulse/internal/mockapi/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := mockapi.NewApp(cfg, logger)
	app.Run(ctx)

}
