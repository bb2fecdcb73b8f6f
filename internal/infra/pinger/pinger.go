package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"
)

const defaultPingTimeout = time.Second

// Option tunes how a registered pinger counts towards readiness and health.
type Option func(*probe)

// WithTimeout bounds a single ping. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(p *probe) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// NotReadyCritical keeps a failing pinger from marking the app unready.
func NotReadyCritical() Option {
	return func(p *probe) {
		p.readyCritical = false
	}
}

// NotHealthCritical keeps a failing pinger from marking the app unhealthy.
func NotHealthCritical() Option {
	return func(p *probe) {
		p.healthCritical = false
	}
}

type probe struct {
	pinger         Pinger
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
	stats          *stats
}

// Service probes registered components on an interval and keeps their statistics.
type Service struct {
	logger     *slog.Logger
	clock      clock.WithTicker
	recorder   statusRecorder
	interval   time.Duration
	mu         sync.RWMutex
	probes     map[string]*probe
	ready      chan struct{}
	inShutdown atomic.Bool
	doneCh     chan struct{}
}

// New creates a new pinger service with the specified interval
func New(
	logger *slog.Logger,
	clk clock.WithTicker,
	recorder statusRecorder,
	interval time.Duration,
) *Service {
	return &Service{
		logger:   logger,
		clock:    clk,
		recorder: recorder,
		interval: interval,
		probes:   make(map[string]*probe),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Name returns the name of the pinger service component
func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a pinger. Names must be unique.
func (s *Service) Register(pinger Pinger, opts ...Option) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: pinger cannot be nil")
	}

	p := &probe{
		pinger:         pinger,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
		stats:          newStats(),
	}

	for _, opt := range opts {
		opt(p)
	}

	name := pinger.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.probes[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	s.probes[name] = p

	s.logger.Info("pinger registered",
		"name", name,
		"readyCritical", p.readyCritical,
		"healthCritical", p.healthCritical,
		"timeout", p.timeout,
	)

	return nil
}

// Start starts the pinger service in a goroutine
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready returns a channel that is closed after the first probe round.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Ping returns nil once the first probe round has finished.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("pinger service is not ready")
	}
}

// Shutdown waits for the probe loop to exit.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down pinger service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "pinger service shut down")
	}

	return nil
}

// GetStats returns statistics for a specific pinger
func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	p, ok := s.probes[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("get stats: %w: %s", ErrPingerNotFound, name)
	}

	return p.statistics(), nil
}

// GetAllStats returns a copy of the statistics of every pinger.
func (s *Service) GetAllStats() map[string]*Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*Statistics, len(s.probes))
	for name, p := range s.probes {
		out[name] = p.statistics()
	}

	return out
}

// Names returns the registered pinger names in sorted order.
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.probes))
	for name := range s.probes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "pinger", "loop", "run")

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	s.ProbeCommand(ctx)

	close(s.ready)

	for {
		select {
		case <-ticker.C():
			if s.inShutdown.Load() {
				logger.InfoContext(ctx, "terminating pinger loop")

				return
			}

			s.ProbeCommand(ctx)
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// ProbeCommand pings every registered component once, in parallel, and waits
// for all of them.
func (s *Service) ProbeCommand(ctx context.Context) {
	s.mu.RLock()
	probes := maps.Clone(s.probes)
	s.mu.RUnlock()

	var g errgroup.Group

	for name, p := range probes {
		g.Go(func() error {
			s.probeOne(ctx, name, p)

			return nil
		})
	}

	_ = g.Wait()
}

func (s *Service) probeOne(ctx context.Context, name string, p *probe) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := s.clock.Now()
	err := p.pinger.Ping(pingCtx)
	latency := s.clock.Since(start)

	p.stats.record(start, latency, err)

	if s.recorder != nil {
		s.recorder.SetComponentUp(name, err == nil)
	}

	if err != nil {
		s.logger.DebugContext(ctx, "pinger error",
			"name", name,
			"latency", latency,
			"reason", err,
		)

		return
	}

	s.logger.DebugContext(ctx, "pinger success",
		"name", name,
		"latency", latency,
	)
}
