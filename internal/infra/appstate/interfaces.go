package appstate

import (
	"time"

	"github.com/kubeonoff/kubeonoff/internal/infra/pinger"
)

type pingerStatsGetter interface {
	GetAllStats() map[string]*pinger.Statistics
}

// pingerServer is the part of the pinger service the app state drives.
type pingerServer interface {
	Register(p pinger.Pinger, opts ...pinger.Option) error
	pingerStatsGetter
}

type healthChecker interface {
	IsHealthy() bool
}

type readyChecker interface {
	IsReady() bool
}

type statusGetter interface {
	pingerStatsGetter
	GetState() State
	GetUptime() time.Duration
	GetStartTime() time.Time
}
