package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"match-tracker-service/internal/config"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "match-tracker-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to build server", "error", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
