package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/kubeonoff/kubeonoff/internal/infra/appstate"
	"github.com/kubeonoff/kubeonoff/internal/infra/pinger"
	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
)

type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
}

func (l *eventLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.events...)
}

type stubComponent struct {
	name     string
	startErr error
	log      *eventLog
	ready    chan struct{}
}

func newStubComponent(name string, log *eventLog, startErr error) *stubComponent {
	return &stubComponent{name: name, startErr: startErr, log: log, ready: make(chan struct{})}
}

func (c *stubComponent) Name() string                 { return c.name }
func (c *stubComponent) Ping(_ context.Context) error { return nil }
func (c *stubComponent) Ready() <-chan struct{}       { return c.ready }

func (c *stubComponent) Start(_ context.Context) error {
	if c.startErr != nil {
		return c.startErr
	}

	c.log.add("start " + c.name)
	close(c.ready)

	return nil
}

func (c *stubComponent) Shutdown(_ context.Context) error {
	c.log.add("shutdown " + c.name)

	return nil
}

type testApp struct {
	app      *App
	appState *appstate.AppState
	pingers  *pinger.Service
	quit     chan os.Signal
}

func newTestApp(components ...component) *testApp {
	logger := slog.Default()
	clk := testingclock.NewFakeClock(time.Date(2026, 2, 16, 17, 0, 0, 0, time.UTC))
	quit := make(chan os.Signal, 1)
	pingers := pinger.New(logger, clk, nil, time.Second)
	appState := appstate.New(logger, clk, quit, pingers)

	return &testApp{
		app: &App{
			logger:     logger,
			appState:   appState,
			signals:    shutdown.New(logger, appState),
			components: components,
		},
		appState: appState,
		pingers:  pingers,
		quit:     quit,
	}
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	log := &eventLog{}
	env := newTestApp(
		newStubComponent("first", log, nil),
		newStubComponent("second", log, nil),
	)
	// The probe loop runs last, as in New.
	env.app.components = append(env.app.components, env.pingers)
	require.NoError(t, env.appState.RegisterPinger(env.app.components[0]))

	done := make(chan error, 1)

	go func() {
		done <- env.app.Run(t.Context())
	}()

	require.Eventually(t, func() bool {
		return env.appState.GetState() == appstate.StateRunning
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, env.pingers.Ping(t.Context()))
	require.True(t, env.appState.IsReady())

	env.quit <- os.Interrupt

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after signal")
	}

	require.Equal(t, appstate.StateTerminated, env.appState.GetState())
	require.Equal(t, []string{"start first", "start second", "shutdown second", "shutdown first"}, log.get())
}

func TestApp_Run_StartFailure(t *testing.T) {
	t.Parallel()

	log := &eventLog{}
	errBind := errors.New("address already in use")
	env := newTestApp(
		newStubComponent("first", log, nil),
		newStubComponent("second", log, errBind),
		newStubComponent("third", log, nil),
	)

	err := env.app.Run(t.Context())
	require.ErrorIs(t, err, errBind)
	require.Contains(t, err.Error(), "start second")

	require.Equal(t, appstate.StateTerminated, env.appState.GetState())
	require.Equal(t, []string{"start first", "shutdown first"}, log.get())
}

type allChannelsCloseCase struct {
	name                         string
	giveNumChannels              int
	giveContextCancelBeforeClose bool
	wantClosed                   bool
}

func TestAllChannelsClose(t *testing.T) {
	logger := slog.Default()

	tests := []allChannelsCloseCase{
		{
			name:            "zero channels closes immediately",
			giveNumChannels: 0,
			wantClosed:      true,
		},
		{
			name:            "one channel closes when it closes",
			giveNumChannels: 1,
			wantClosed:      true,
		},
		{
			name:            "two channels close when both close",
			giveNumChannels: 2,
			wantClosed:      true,
		},
		{
			name:                         "context cancelled then channels close",
			giveNumChannels:              2,
			giveContextCancelBeforeClose: true,
			wantClosed:                   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			if tt.giveContextCancelBeforeClose {
				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveNumChannels)
			readyChans := make([]chan struct{}, 0, tt.giveNumChannels)

			for range tt.giveNumChannels {
				ch := make(chan struct{})

				readyChans = append(readyChans, ch)
				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, logger, chans...)

			if tt.giveNumChannels == 0 {
				select {
				case <-out:
				case <-time.After(100 * time.Millisecond):
					t.Fatal("expected out channel to close immediately")
				}

				return
			}

			for _, ch := range readyChans {
				close(ch)
			}

			select {
			case <-out:
			case <-time.After(500 * time.Millisecond):
				t.Fatal("expected out channel to close after all input channels closed")
			}
		})
	}
}
