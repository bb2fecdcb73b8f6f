package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
)

// listener owns one http.Server and its Start/Ready/Ping/Shutdown lifecycle.
type listener struct {
	logger     *slog.Logger
	name       string
	port       string
	server     *http.Server
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newListener(logger *slog.Logger, name, port string) *listener {
	return &listener{
		logger: logger.With("component", name),
		name:   name,
		port:   port,
		ready:  make(chan struct{}),
	}
}

// serve binds the port synchronously, so a taken port fails Start, and then
// serves handler in the background.
func (l *listener) serve(ctx context.Context, handler http.Handler) error {
	if l.inShutdown.Load() {
		l.logger.InfoContext(ctx, "shutting down, skipping start")

		return nil
	}

	addr := ":" + l.port
	l.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s tcp: %w", l.name, err)
	}

	l.logger.InfoContext(ctx, "listening", "addr", ln.Addr().String())

	go func() {
		close(l.ready)

		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.ErrorContext(ctx, "serve failed", "reason", err)
		}
	}()

	return nil
}

// Ready returns a channel that is closed once the port is bound.
func (l *listener) Ready() <-chan struct{} {
	return l.ready
}

// Ping returns nil when the server is ready to serve.
func (l *listener) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ready:
		return nil
	default:
		return fmt.Errorf("%s is not ready", l.name)
	}
}

// Shutdown gracefully shuts the server down. Later calls are no-ops.
func (l *listener) Shutdown(ctx context.Context) error {
	if !l.inShutdown.CompareAndSwap(false, true) {
		l.logger.ErrorContext(ctx, "already shutting down, skipping shutdown")

		return nil
	}

	l.logger.InfoContext(ctx, "shutting down")

	if l.server == nil {
		return nil
	}

	if err := l.server.Shutdown(ctx); err != nil {
		l.logger.ErrorContext(ctx, "shutdown failed", "reason", err)

		return fmt.Errorf("%s shutdown: %w", l.name, err)
	}

	l.logger.InfoContext(ctx, "closed properly")

	return nil
}
