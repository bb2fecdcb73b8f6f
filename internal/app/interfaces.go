package app

import (
	"context"
	"os"

	"github.com/kubeonoff/kubeonoff/internal/infra/pinger"
	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(p pinger.Pinger, opts ...pinger.Option) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
}

// component is a long running part of the app with its own lifecycle.
type component interface {
	pinger.Pinger
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}
