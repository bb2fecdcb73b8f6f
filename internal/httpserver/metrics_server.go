package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
)

const defaultMetricsPort = "9090"

// MetricsServer serves Prometheus metrics on a dedicated port.
type MetricsServer struct {
	*listener

	gatherer prometheus.Gatherer
}

// NewMetricsServer creates a metrics server that serves GET /metrics from
// gatherer on the given port.
func NewMetricsServer(logger *slog.Logger, gatherer prometheus.Gatherer, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		listener: newListener(logger, "metrics-server", port),
		gatherer: gatherer,
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

// Name returns the name of the metrics server component.
func (s *MetricsServer) Name() string {
	return s.name
}

// Start binds the metrics port and serves in the background.
func (s *MetricsServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", s.Handler())

	return s.serve(ctx, mux)
}

// Handler serves the registry in the Prometheus exposition format.
func (s *MetricsServer) Handler() http.Handler {
	return promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	})
}
