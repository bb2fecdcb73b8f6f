package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
	"k8s.io/apimachinery/pkg/util/cache"
	"k8s.io/utils/clock"
)

// Config holds the tunables of the dashboard service.
type Config struct {
	Namespace       string
	RefreshInterval time.Duration
	SnapshotTTL     time.Duration
	MetricsTTL      time.Duration
	LogTailLines    int64
}

type Service struct {
	logger    *slog.Logger
	repo      Repository
	recorder  Recorder
	scheduler Scheduler
	clock     clock.Clock
	cfg       Config

	cache      *cache.Expiring
	group      singleflight.Group
	generation atomic.Uint64

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool

	mu                 sync.RWMutex
	lastRefreshEndTime time.Time
}

// New creates a new dashboard service.
func New(
	logger *slog.Logger,
	repo Repository,
	recorder Recorder,
	scheduler Scheduler,
	clk clock.Clock,
	cfg Config,
) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		recorder:  recorder,
		scheduler: scheduler,
		clock:     clk,
		cfg:       cfg,
		cache:     cache.NewExpiringWithClock(clk),
		ready:     make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Name returns the name of the service component
func (s *Service) Name() string {
	return "dashboard-service"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "dashboard service is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		lastRefreshAge := s.getLastRefreshAge()
		if lastRefreshAge > 2*s.cfg.RefreshInterval {
			return fmt.Errorf("last refresh was too long ago: %s", lastRefreshAge.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("dashboard service is not ready")
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "dashboard service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "dashboard service shut down")
	}()

	s.logger.InfoContext(ctx, "shutting down dashboard service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before refresh loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "refresh loop exited")
	}

	return nil
}

// RunCommand refreshes the exported state in a loop with the configured interval.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "dashboard", "loop", "RunCommand")

	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	close(s.ready)

	for {
		err := s.RefreshCommand(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "refresh error", "reason", err)
		}

		s.setLastRefreshEndTime()

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating refresh loop")

			return
		}
	}
}

// RefreshCommand runs one iteration: it takes a snapshot, publishes the
// classified state and stops deployments whose off schedule is due.
func (s *Service) RefreshCommand(ctx context.Context) error {
	start := s.clock.Now()

	snapshot, err := s.SnapshotQuery(ctx)
	s.recorder.ObserveRefresh(s.clock.Since(start), err)

	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	s.publish(buildSummary(snapshot, "", s.clock.Now()))
	s.runScheduledStops(ctx, snapshot)

	return nil
}

func (s *Service) publish(summary *Summary) {
	for i := range summary.Deployments {
		d := &summary.Deployments[i]
		s.recorder.SetDeploymentState(d.Name, string(d.State), d.Desired, d.Available)
		s.publishUtilization(kindDeployment, d.Name, d.Utilization)

		for j := range d.Pods {
			s.recorder.SetPodRestarts(d.Name, d.Pods[j].Name, d.Pods[j].Restarts)
		}
	}

	for i := range summary.Daemonsets {
		ds := &summary.Daemonsets[i]
		s.recorder.SetDaemonsetState(ds.Name, string(ds.State), ds.Desired, ds.Available)
		s.publishUtilization(kindDaemonset, ds.Name, ds.Utilization)

		for j := range ds.Pods {
			s.recorder.SetPodRestarts(ds.Name, ds.Pods[j].Name, ds.Pods[j].Restarts)
		}
	}

	s.recorder.SweepWorkloads()
}

func (s *Service) publishUtilization(kind, name string, u UtilizationSummary) {
	if u.CPU != nil {
		s.recorder.SetUtilization(kind, name, resourceCPU, *u.CPU)
	}

	if u.Mem != nil {
		s.recorder.SetUtilization(kind, name, resourceMemory, *u.Mem)
	}
}

func (s *Service) getLastRefreshAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clock.Since(s.lastRefreshEndTime)
}

func (s *Service) setLastRefreshEndTime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefreshEndTime = s.clock.Now()
}
