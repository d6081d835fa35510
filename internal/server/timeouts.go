package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor leaves headroom over the upstream timeout so a slow fan-out
// can still write its 500.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return writeTimeout
	}
	if d := upstream + 5*time.Second; d > writeTimeout {
		return d
	}
	return writeTimeout
}
