package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"DealerScanner/internal/app"
	"DealerScanner/internal/config"
	"DealerScanner/internal/logging"
)

func main() {
	ctx := context.Background()

	// Secrets (DSN, bot token) may come from a local .env file.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
