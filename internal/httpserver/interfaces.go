package httpserver

import (
	"context"
	"time"

	"github.com/kubeonoff/kubeonoff/internal/infra/appstate"
	"github.com/kubeonoff/kubeonoff/internal/infra/pinger"
	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// dashboardService is the use case surface behind the /v1 API.
type dashboardService interface {
	SnapshotQuery(ctx context.Context) (*dashboard.Snapshot, error)
	SummaryQuery(ctx context.Context, search string) (*dashboard.Summary, error)
	TurnOffCommand(ctx context.Context, name string) (*workload.Deployment, error)
	TurnOnCommand(ctx context.Context, name string) (*workload.Deployment, error)
	RestartCommand(ctx context.Context, name string) error
	DeletePodCommand(ctx context.Context, name string) error
	DeleteAllPodsCommand(ctx context.Context) ([]dashboard.PodDeletion, error)
	PodLogQuery(ctx context.Context, pod, container string, timestamps bool) ([]byte, error)
}

var _ dashboardService = (*dashboard.Service)(nil)
