package pinger

import (
	"slices"
	"sync"
	"time"
)

const latencyWindow = 100

// LatencyMetrics summarizes the recent successful ping latencies.
type LatencyMetrics struct {
	Count  int           `json:"count"`
	Median time.Duration `json:"median"`
	P90    time.Duration `json:"p90"`
	P99    time.Duration `json:"p99"`
}

// Statistics is a point-in-time view of one pinger.
type Statistics struct {
	IsReady       bool           `json:"ready"`
	IsHealthy     bool           `json:"healthy"`
	LastRun       time.Time      `json:"lastRun"`
	LastError     string         `json:"lastError,omitempty"`
	LastErrorTime *time.Time     `json:"lastErrorTime,omitempty"`
	SuccessCount  int            `json:"successCount"`
	ErrorCount    int            `json:"errorCount"`
	Latency       LatencyMetrics `json:"latency"`
}

type stats struct {
	mu            sync.RWMutex
	lastRun       time.Time
	lastErr       error
	lastErrorTime time.Time
	successCount  int
	errorCount    int
	latencies     []time.Duration
	next          int
}

func newStats() *stats {
	return &stats{latencies: make([]time.Duration, 0, latencyWindow)}
}

func (s *stats) record(at time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = at
	s.lastErr = err

	if err != nil {
		s.errorCount++
		s.lastErrorTime = at

		return
	}

	s.successCount++

	if len(s.latencies) < latencyWindow {
		s.latencies = append(s.latencies, latency)

		return
	}

	s.latencies[s.next] = latency
	s.next = (s.next + 1) % latencyWindow
}

func (p *probe) statistics() *Statistics {
	s := p.stats

	s.mu.RLock()
	defer s.mu.RUnlock()

	// A pinger that never ran yet is not held against the app.
	failing := s.lastErr != nil

	out := &Statistics{
		IsReady:      !p.readyCritical || !failing,
		IsHealthy:    !p.healthCritical || !failing,
		LastRun:      s.lastRun,
		SuccessCount: s.successCount,
		ErrorCount:   s.errorCount,
		Latency:      latencyMetrics(s.latencies),
	}

	if failing {
		out.LastError = s.lastErr.Error()
	}

	if !s.lastErrorTime.IsZero() {
		t := s.lastErrorTime
		out.LastErrorTime = &t
	}

	return out
}

func latencyMetrics(latencies []time.Duration) LatencyMetrics {
	if len(latencies) == 0 {
		return LatencyMetrics{}
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	return LatencyMetrics{
		Count:  len(sorted),
		Median: percentile(sorted, 50),
		P90:    percentile(sorted, 90),
		P99:    percentile(sorted, 99),
	}
}

// percentile uses the nearest-rank method on sorted input.
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}

	return sorted[rank-1]
}
