package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Roster lookups fetch every player page in sequence.
	writeTimeout = 3 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
