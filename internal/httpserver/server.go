package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kubeonoff/kubeonoff/internal/config"
	"github.com/kubeonoff/kubeonoff/internal/infra/appstate"
	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
)

// Options configures the dashboard HTTP server.
type Options struct {
	Port                string
	ProxyAuthUserHeader string
	StaticDir           string
	Extensions          []config.Extension
}

type Server struct {
	*listener

	appState  appstater
	dashboard dashboardService
	opts      Options
}

// New creates a new HTTP server instance
func New(logger *slog.Logger, appState appstater, svc dashboardService, opts Options) *Server {
	if opts.Port == "" {
		opts.Port = defaultPort
	}

	return &Server{
		listener:  newListener(logger, "http-server", opts.Port),
		appState:  appState,
		dashboard: svc,
		opts:      opts,
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Name returns the name of the server component
func (s *Server) Name() string {
	return s.name
}

// Handler builds the router: lifecycle endpoints, the /v1 API, extension
// proxies and, when configured, the static frontend.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", appstate.HandleStatus(s.logger, s.appState))

	router.Route("/v1", func(r chi.Router) {
		r.Use(authTrail(s.logger, s.opts.ProxyAuthUserHeader))

		r.Get("/all", s.handleAll)
		r.Get("/summary", s.handleSummary)
		r.Post("/deployments/{name}/off", s.handleDeploymentOff)
		r.Post("/deployments/{name}/on", s.handleDeploymentOn)
		r.Post("/deployments/{name}/restart", s.handleDeploymentRestart)
		r.Get("/pods/{name}/{container}/log", s.handlePodLog)
		r.Delete("/pods/all", s.handlePodDeleteAll)
		r.Delete("/pods/{name}", s.handlePodDelete)
		r.Get("/kubeonoff/extensions", s.handleExtensions)

		for _, ext := range s.opts.Extensions {
			r.Handle("/kubeonoff/extensions/"+ext.Name+"/*", newExtensionProxy(s.logger, ext))
		}
	})

	if s.opts.StaticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(s.opts.StaticDir)))
	}

	return router
}

// Start binds the API port and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	return s.serve(ctx, s.Handler())
}
