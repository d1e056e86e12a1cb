package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/sleeper-bridge/internal/config"
	"github.com/preston-bernstein/sleeper-bridge/internal/logging"
	"github.com/preston-bernstein/sleeper-bridge/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger(cfg, os.Stdout)
	logger.Info("config loaded",
		"port", cfg.Port,
		"provider", cfg.Provider,
		"sleeper_base_url", cfg.Sleeper.BaseURL,
		"sleeper_timeout", cfg.Sleeper.Timeout.String(),
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  out,
	})
}
