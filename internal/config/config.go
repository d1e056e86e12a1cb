package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Sleeper  SleeperConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory, when present, seeds variables that are not already set.
func Load() Config {
	loadDotEnv()

	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Sleeper:  loadSleeper(),
		Metrics:  loadMetrics(),
		Log:      loadLog(),
	}
}
