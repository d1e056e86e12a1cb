package server

import (
	"time"

	"github.com/preston-bernstein/sleeper-bridge/internal/providers/sleeper"
)

const (
	// Every route is a bodiless GET, so only the headers need reading.
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	// Time left after the upstream deadline to encode and flush the response, including a 502.
	writeMargin = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor returns a write deadline that outlasts the upstream client timeout,
// so a slow upstream still ends in a written 502 rather than a dropped connection.
// The simplified rosters fan-out runs its two calls in parallel, so one upstream window suffices.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = sleeper.DefaultTimeout
	}
	return upstream + writeMargin
}
