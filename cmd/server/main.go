package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"scoreboard-relay/internal/config"
	"scoreboard-relay/internal/logging"
	"scoreboard-relay/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "scoreboard-relay",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server init failed", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
