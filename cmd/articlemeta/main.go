package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"ArticleMetadata/internal/app"
	"ArticleMetadata/internal/config"
	"ArticleMetadata/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err)
		return 1
	}
	defer application.Close()

	results, runErr := application.Run(ctx, args)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		logger.Error("write results", "error", err)
		return 1
	}

	if runErr != nil {
		logger.Error("application stopped", "error", runErr)
		return 1
	}
	return 0
}
