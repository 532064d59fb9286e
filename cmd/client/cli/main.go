package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/syncbox/syncbox/internal/client/cli"
	"github.com/syncbox/syncbox/internal/client/config"
	"github.com/syncbox/syncbox/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
