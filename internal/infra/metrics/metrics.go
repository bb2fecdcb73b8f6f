package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kubeonoff"

// Exporter publishes the classified workload state and dashboard activity.
type Exporter struct {
	deploymentState    *prometheus.GaugeVec
	deploymentReplicas *prometheus.GaugeVec
	daemonsetState     *prometheus.GaugeVec
	daemonsetPods      *prometheus.GaugeVec
	podRestarts        *prometheus.GaugeVec
	utilization        *prometheus.GaugeVec
	refreshDuration    prometheus.Histogram
	refreshErrors      prometheus.Counter
	actions            *prometheus.CounterVec
	componentUp        *prometheus.GaugeVec

	mu      sync.Mutex
	touched map[seriesKey][]string
	live    map[seriesKey][]string
}

// seriesKey identifies one per-workload series for the stale sweep.
type seriesKey struct {
	vec    *prometheus.GaugeVec
	labels string
}

// New registers the dashboard metrics with reg.
func New(reg prometheus.Registerer) *Exporter {
	factory := promauto.With(reg)

	return &Exporter{
		touched: make(map[seriesKey][]string),
		live:    make(map[seriesKey][]string),
		deploymentState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "deployment_state",
				Help:      "Classified deployment state; 1 for the current state (off, on, pending).",
			},
			[]string{"deployment", "state"},
		),
		deploymentReplicas: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "deployment_replicas",
				Help:      "Deployment replicas by kind (desired, available).",
			},
			[]string{"deployment", "kind"},
		),
		daemonsetState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "daemonset_state",
				Help:      "Classified daemonset state; 1 for the current state (on, pending).",
			},
			[]string{"daemonset", "state"},
		),
		daemonsetPods: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "daemonset_pods",
				Help:      "Daemonset pods by kind (desired, available).",
			},
			[]string{"daemonset", "kind"},
		),
		podRestarts: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "pod_restarts",
				Help:      "Sum of container restart counts per pod.",
			},
			[]string{"owner", "pod"},
		),
		utilization: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "utilization_ratio",
				Help:      "Highest container usage/limit ratio across a workload's pods.",
			},
			[]string{"kind", "name", "resource"},
		),
		refreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "refresh_duration_seconds",
				Help:      "Time taken to fetch a namespace snapshot.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		refreshErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refresh_errors_total",
				Help:      "Total number of failed snapshot refreshes.",
			},
		),
		actions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Dashboard actions by kind and outcome.",
			},
			[]string{"action", "outcome"},
		),
		componentUp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "component_up",
				Help:      "1 when the last health probe of a component succeeded.",
			},
			[]string{"component"},
		),
	}
}

// SweepWorkloads deletes the per-workload series that were not set since the
// previous sweep, so deleted workloads and left states disappear while the
// current series are never missing from a scrape.
func (e *Exporter) SweepWorkloads() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for key, labels := range e.live {
		if _, ok := e.touched[key]; !ok {
			key.vec.DeleteLabelValues(labels...)
		}
	}

	e.live = e.touched
	e.touched = make(map[seriesKey][]string, len(e.live))
}

func (e *Exporter) SetDeploymentState(name, state string, desired, available int32) {
	e.set(e.deploymentState, 1, name, state)
	e.set(e.deploymentReplicas, float64(desired), name, "desired")
	e.set(e.deploymentReplicas, float64(available), name, "available")
}

func (e *Exporter) SetDaemonsetState(name, state string, desired, available int32) {
	e.set(e.daemonsetState, 1, name, state)
	e.set(e.daemonsetPods, float64(desired), name, "desired")
	e.set(e.daemonsetPods, float64(available), name, "available")
}

func (e *Exporter) SetPodRestarts(owner, pod string, restarts int) {
	e.set(e.podRestarts, float64(restarts), owner, pod)
}

func (e *Exporter) SetUtilization(kind, name, resource string, ratio float64) {
	e.set(e.utilization, ratio, kind, name, resource)
}

func (e *Exporter) set(vec *prometheus.GaugeVec, value float64, labels ...string) {
	vec.WithLabelValues(labels...).Set(value)

	e.mu.Lock()
	e.touched[seriesKey{vec: vec, labels: strings.Join(labels, "\xff")}] = labels
	e.mu.Unlock()
}

func (e *Exporter) ObserveRefresh(duration time.Duration, err error) {
	e.refreshDuration.Observe(duration.Seconds())

	if err != nil {
		e.refreshErrors.Inc()
	}
}

func (e *Exporter) IncAction(action, outcome string) {
	e.actions.WithLabelValues(action, outcome).Inc()
}

// SetComponentUp records the outcome of a component health probe.
func (e *Exporter) SetComponentUp(component string, up bool) {
	value := 0.0
	if up {
		value = 1
	}

	e.componentUp.WithLabelValues(component).Set(value)
}
