package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/kubeonoff/kubeonoff/internal/infra/pinger"
	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
)

// State represents the application state
type State string

const (
	// StateInit is the initial state when the application is created
	StateInit State = "init"

	// StateStarting is the state when the application is starting up
	StateStarting State = "starting"

	// StateRunning is the state when the application is running normally
	StateRunning State = "running"

	// StateTerminating is the state when the application is shutting down
	StateTerminating State = "terminating"

	// StateTerminated is the final state when the application has terminated
	StateTerminated State = "terminated"
)

const defaultShutdownersCount = 8

// AppState tracks the lifecycle of the process and aggregates component probes
// into health and readiness.
type AppState struct {
	mu            sync.RWMutex
	logger        *slog.Logger
	clock         clock.PassiveClock
	startedAt     time.Time
	readyAt       *time.Time
	terminatingAt *time.Time
	state         State
	quit          <-chan os.Signal
	pinger        pingerServer
	shutdowners   []shutdown.Shutdowner
}

// New creates a new AppState started at the current clock time.
func New(
	logger *slog.Logger,
	clk clock.PassiveClock,
	quit <-chan os.Signal,
	pinger pingerServer,
) *AppState {
	return &AppState{
		logger:      logger,
		clock:       clk,
		startedAt:   clk.Now(),
		state:       StateInit,
		quit:        quit,
		pinger:      pinger,
		shutdowners: make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
	}
}

func (s *AppState) RegisterPinger(p pinger.Pinger, opts ...pinger.Option) error {
	return s.pinger.Register(p, opts...)
}

// RegisterShutdowner adds a component; components shut down in reverse
// registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdowners = append(s.shutdowners, shutdowner)

	return nil
}

func (s *AppState) GetAllStats() map[string]*pinger.Statistics {
	return s.pinger.GetAllStats()
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting: %w", ErrInvalidStateTransition)
	}

	return s.setState(StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running: %w", ErrInvalidStateTransition)
	}

	now := s.clock.Now()
	s.readyAt = &now

	s.logger.InfoContext(ctx, "application is running",
		"startup", now.Sub(s.startedAt).String(),
	)

	return s.setState(StateRunning)
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	now := s.clock.Now()
	s.terminatingAt = &now

	return s.setState(StateTerminating)
}

func (s *AppState) setState(newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state: %w", ErrAlreadyTerminated)
	}

	s.state = newState

	return nil
}

// GetState returns the current application state
func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// GetStartTime returns the time when the application started
func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

// GetUptime returns the duration since the application started
func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clock.Since(s.startedAt)
}

// IsHealthy is true while running and no health-critical component fails.
func (s *AppState) IsHealthy() bool {
	if s.GetState() != StateRunning {
		return false
	}

	for _, stats := range s.pinger.GetAllStats() {
		if !stats.IsHealthy {
			return false
		}
	}

	return true
}

// IsReady is true once running and while no ready-critical component fails.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	running := s.state == StateRunning && s.readyAt != nil
	s.mu.RUnlock()

	if !running {
		return false
	}

	for _, stats := range s.pinger.GetAllStats() {
		if !stats.IsReady {
			return false
		}
	}

	return true
}

// Quit returns the channel that will receive the signal when shutdown is requested
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown stops every registered component and marks the app terminated.
// Calling it again after termination is a no-op.
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := append([]shutdown.Shutdowner(nil), s.shutdowners...)
	s.mu.RUnlock()

	err := shutdown.GracefulShutdown(ctx, s.logger, shutdowners)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
