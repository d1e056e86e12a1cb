package config

const (
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// LogConfig selects the log level and handler format ("text" or "json").
type LogConfig struct {
	Level  string
	Format string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
