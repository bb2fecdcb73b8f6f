package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
	"k8s.io/utils/clock"

	"github.com/kubeonoff/kubeonoff/internal/adapters/outbound/k8s"
	"github.com/kubeonoff/kubeonoff/internal/config"
	"github.com/kubeonoff/kubeonoff/internal/httpserver"
	"github.com/kubeonoff/kubeonoff/internal/infra/appstate"
	"github.com/kubeonoff/kubeonoff/internal/infra/metrics"
	"github.com/kubeonoff/kubeonoff/internal/infra/pinger"
	"github.com/kubeonoff/kubeonoff/internal/infra/schedule"
	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
)

const k8sPingTimeout = 5 * time.Second

var _ component = (*pinger.Service)(nil)

type App struct {
	logger     *slog.Logger
	appState   appstater
	signals    signalHandler
	components []component
}

// New creates a new application instance with all dependencies wired.
func New(logger *slog.Logger, cfg *config.Config, quit <-chan os.Signal) (*App, error) {
	clientset, metricsClientset, err := newClients(cfg)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter := metrics.New(registry)
	clk := clock.RealClock{}

	dashboardService := newDashboard(logger, cfg, clientset, metricsClientset, exporter)

	pingers := pinger.New(logger, clk, exporter, cfg.ProbeInterval)
	appState := appstate.New(logger, clk, quit, pingers)

	httpServer := httpserver.New(logger, appState, dashboardService, httpserver.Options{
		Port:                cfg.HTTPPort,
		ProxyAuthUserHeader: cfg.ProxyAuthUserHeader,
		StaticDir:           cfg.StaticDir,
		Extensions:          cfg.Extensions,
	})
	metricsServer := httpserver.NewMetricsServer(logger, registry, cfg.MetricsPort)

	if err := appState.RegisterPinger(k8s.NewAPIPinger(clientset), pinger.WithTimeout(k8sPingTimeout)); err != nil {
		return nil, fmt.Errorf("register pinger: %w", err)
	}

	if err := appState.RegisterPinger(dashboardService); err != nil {
		return nil, fmt.Errorf("register pinger: %w", err)
	}

	if err := appState.RegisterPinger(httpServer); err != nil {
		return nil, fmt.Errorf("register pinger: %w", err)
	}

	// A broken metrics port must not take the dashboard out of rotation.
	if err := appState.RegisterPinger(metricsServer, pinger.NotReadyCritical()); err != nil {
		return nil, fmt.Errorf("register pinger: %w", err)
	}

	return &App{
		logger:   logger,
		appState: appState,
		signals:  shutdown.New(logger, appState),
		// Started in order, shut down in reverse: probes stop first and the
		// refresh loop last.
		components: []component{dashboardService, httpServer, metricsServer, pingers},
	}, nil
}

// Summarize fetches and classifies the namespace once, without serving anything.
func Summarize(ctx context.Context, logger *slog.Logger, cfg *config.Config, search string) (*dashboard.Summary, error) {
	clientset, metricsClientset, err := newClients(cfg)
	if err != nil {
		return nil, err
	}

	exporter := metrics.New(prometheus.NewRegistry())
	svc := newDashboard(logger, cfg, clientset, metricsClientset, exporter)

	summary, err := svc.SummaryQuery(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	return summary, nil
}

func newClients(cfg *config.Config) (kubernetes.Interface, metricsv.Interface, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	return clientset, metricsClientset, nil
}

func newDashboard(
	logger *slog.Logger,
	cfg *config.Config,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
	exporter *metrics.Exporter,
) *dashboard.Service {
	return dashboard.New(
		logger,
		k8s.New(logger, clientset, metricsClientset),
		exporter,
		schedule.New(cfg.ScheduleTZ),
		clock.RealClock{},
		dashboard.Config{
			Namespace:       cfg.Namespace,
			RefreshInterval: cfg.RefreshInterval,
			SnapshotTTL:     cfg.SnapshotTTL,
			MetricsTTL:      cfg.MetricsTTL,
			LogTailLines:    cfg.LogTailLines,
		},
	)
}

// Run starts every component and blocks until a termination signal or
// context cancellation, then shuts the components down.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.components))

	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			cancel()

			return a.abort(originCtx, fmt.Errorf("start %s: %w", c.Name(), err))
		}

		if err := a.appState.RegisterShutdowner(c); err != nil {
			cancel()

			return a.abort(originCtx, fmt.Errorf("register shutdowner: %w", err))
		}

		readyChans = append(readyChans, c.Ready())
	}

	select {
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	case <-ctx.Done():
	}

	if ctx.Err() == nil {
		if err := a.appState.SetRunning(ctx); err != nil {
			cancel()

			return a.abort(originCtx, fmt.Errorf("set running: %w", err))
		}
	}

	<-ctx.Done()

	a.logger.InfoContext(originCtx, "shutting down")

	if err := a.appState.Shutdown(originCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func (a *App) abort(ctx context.Context, cause error) error {
	if err := a.appState.Shutdown(ctx); err != nil {
		a.logger.ErrorContext(ctx, "shutdown after failed start", "reason", err)
	}

	return cause
}

// allChannelsClose returns a channel closed once every input channel is
// closed, or as soon as ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for components",
					"waiting", len(chans)-i,
					"reason", ctx.Err(),
				)

				return
			}
		}
	}()

	return out
}
