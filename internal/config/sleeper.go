package config

const (
	envSleeperBaseURL   = "SLEEPER_BASE_URL"
	envSleeperTimeout   = "SLEEPER_TIMEOUT"
	envSleeperUserAgent = "SLEEPER_USER_AGENT"

	defaultSleeperBaseURL   = "https://api.sleeper.app/v1"
	defaultSleeperUserAgent = "sleeper-bridge/1.0"
)

// SleeperConfig controls how we talk to the Sleeper API.
type SleeperConfig struct {
	BaseURL   string
	Timeout   Duration
	UserAgent string
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL:   envOrDefault(envSleeperBaseURL, defaultSleeperBaseURL),
		Timeout:   durationEnvOrDefault(envSleeperTimeout, defaultSleeperTimeout),
		UserAgent: envOrDefault(envSleeperUserAgent, defaultSleeperUserAgent),
	}
}
