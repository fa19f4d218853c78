package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/awardkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/awardkeeper/internal/client/cli"
	"github.com/dmitrijs2005/awardkeeper/internal/client/config"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	if cfg.AccessToken == "" {
		token, err := cli.PromptAccessToken(os.Stdout)
		if err != nil {
			log.Fatalf("read access token: %v", err)
		}
		cfg.AccessToken = token
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
