package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/mykeychain/internal/cli"
	"github.com/dmitrijs2005/mykeychain/internal/config"
	"github.com/dmitrijs2005/mykeychain/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	// Keep the REPL output clean; only warnings and errors reach stderr.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
