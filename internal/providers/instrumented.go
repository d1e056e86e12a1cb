package providers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/sleeper-bridge/internal/logging"
	"github.com/preston-bernstein/sleeper-bridge/internal/metrics"
)

// instrumentedUpstream wraps an Upstream with call metrics and logging. It never retries.
type instrumentedUpstream struct {
	inner        Upstream
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedUpstream wraps inner so every call is timed, counted and logged under providerName.
func NewInstrumentedUpstream(inner Upstream, logger *slog.Logger, recorder *metrics.Recorder, providerName string) Upstream {
	if providerName == "" {
		providerName = "upstream"
	}
	return &instrumentedUpstream{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (u *instrumentedUpstream) Get(ctx context.Context, path string, dest any) error {
	if u.inner == nil {
		return ErrUpstreamUnavailable
	}

	endpoint := EndpointName(path)
	start := u.now()
	err := u.inner.Get(ctx, path, dest)
	duration := u.now().Sub(start)

	status := statusFor(err)
	u.metrics.RecordUpstreamCall(endpoint, status, duration, err)

	logger := logging.FromContext(ctx, u.logger)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, u.providerName, "upstream call failed",
			slog.String(logging.FieldUpstream, endpoint),
			slog.String(logging.FieldPath, path),
			slog.Int(logging.FieldStatusCode, status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return err
	}
	logWithProvider(ctx, logger, slog.LevelDebug, u.providerName, "upstream call complete",
		slog.String(logging.FieldUpstream, endpoint),
		slog.String(logging.FieldPath, path),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return nil
}

// Unwrap exposes the wrapped upstream.
func (u *instrumentedUpstream) Unwrap() Upstream {
	return u.inner
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if upErr, ok := AsUpstreamError(err); ok {
		return upErr.StatusCode
	}
	return 0
}
