package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotEnvFile   = "DOTENV_FILE"

	defaultPort        = "5000"
	defaultProvider    = "sleeper"
	defaultMetricsPort = "9090"
	defaultServiceName = "sleeper-bridge"
	defaultDotEnvFile  = ".env"

	// The players/nfl catalog is several megabytes; leave room for slow upstream responses.
	defaultSleeperTimeout = 30 * Duration(time.Second)
)
