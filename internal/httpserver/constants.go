package httpserver

import "time"

const (
	defaultPort = "8080"

	readTimeout       = 5 * time.Second
	readHeaderTimeout = 3 * time.Second
	// Log tails and extension backends can take a while.
	writeTimeout   = 30 * time.Second
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 14 // 16kb, room for auth proxy headers
)

const (
	unknownUser = "(unknown)"

	// forwardedUserHeader carries the acting user to extension backends.
	forwardedUserHeader = "X-Forwarded-User"

	extensionsPrefix = "/v1/kubeonoff/extensions/"
)
