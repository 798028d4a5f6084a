package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TongAlan/val-api/internal/config"
	"github.com/TongAlan/val-api/internal/logging"
	"github.com/TongAlan/val-api/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(); err != nil {
		logging.NewLogger(logging.Config{}).Error("failed to read .env", "error", err)
		return 1
	}

	cfg := config.Load()
	version := cfg.Log.Version
	if version == "" {
		version = appVersion
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: version,
	})

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.Run(ctx, stop)
	return 0
}
