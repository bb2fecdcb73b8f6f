package pinger

import "context"

// Pinger defines the interface for health check pingers
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// statusRecorder receives the outcome of every probe.
type statusRecorder interface {
	SetComponentUp(component string, up bool)
}
