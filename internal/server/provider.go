package server

import (
	"log/slog"

	"github.com/preston-bernstein/sleeper-bridge/internal/config"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers/fixture"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers/sleeper"
)

const (
	providerSleeper = "sleeper"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.Upstream {
	switch normalizeProviderName(cfg.Provider, nil) {
	case providerSleeper, "":
		return newSleeperClient(cfg)
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to sleeper", slog.String("provider", cfg.Provider))
		}
		return newSleeperClient(cfg)
	}
}

func newSleeperClient(cfg config.Config) *sleeper.Client {
	return sleeper.NewClient(sleeper.Config{
		BaseURL:   cfg.Sleeper.BaseURL,
		UserAgent: cfg.Sleeper.UserAgent,
		Timeout:   cfg.Sleeper.Timeout,
	})
}
