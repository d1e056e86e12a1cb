package server

import (
	"log/slog"

	"github.com/preston-bernstein/sleeper-bridge/internal/config"
	"github.com/preston-bernstein/sleeper-bridge/internal/metrics"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

// providerFactory assembles the upstream with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.Upstream {
	return f.wrap(selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(base providers.Upstream) providers.Upstream {
	return providers.NewInstrumentedUpstream(base, f.logger, f.metrics, normalizeProviderName("", base))
}
