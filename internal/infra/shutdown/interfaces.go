package shutdown

import (
	"context"
	"os"
)

// Shutdowner is a component the app stops on exit, in reverse start order.
type Shutdowner interface {
	Name() string
	Shutdown(ctx context.Context) error
}

// quiter delivers the termination signal.
type quiter interface {
	Quit() <-chan os.Signal
}
