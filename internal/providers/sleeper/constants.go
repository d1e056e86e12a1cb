package sleeper

import "time"

// DefaultTimeout bounds a single upstream call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

const (
	providerName     = "sleeper"
	defaultBaseURL   = "https://api.sleeper.app/v1"
	defaultUserAgent = "sleeper-bridge/1.0"
	// Upper bound on how much of a failed response body is echoed into errors.
	maxErrorBody = 512
	// How far past the first JSON value we look for stray content.
	maxTrailingScan = 4096
)
