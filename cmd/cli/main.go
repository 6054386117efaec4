package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/postdesk/internal/buildinfo"
	"github.com/dmitrijs2005/postdesk/internal/client/cli"
	"github.com/dmitrijs2005/postdesk/internal/client/config"
	"github.com/dmitrijs2005/postdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
