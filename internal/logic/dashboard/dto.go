package dashboard

import (
	"time"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// List mirrors the cluster API list envelope so the frontend can read
// payloads the same way it reads raw API lists.
type List[T any] struct {
	Items []T `json:"items"`
}

// Workloads is one consistent read of the namespace.
type Workloads struct {
	Deployments []workload.Deployment
	Daemonsets  []workload.Daemonset
	Pods        []workload.Pod
	ReplicaSets []workload.ReplicaSet
}

// PodUsage is the raw resource usage of one pod from the metrics API.
type PodUsage struct {
	Name       string
	Containers []ContainerUsageSample
}

type ContainerUsageSample struct {
	Name   string
	CPU    *resource.Quantity
	Memory *resource.Quantity
}

// LogOptions selects what part of a container log is returned.
type LogOptions struct {
	Container  string
	TailLines  int64
	Timestamps bool
}

// Snapshot is the payload of GET /v1/all. Metrics is nil when the metrics
// API could not be reached, and is then encoded as null.
type Snapshot struct {
	Deployments             List[workload.Deployment]      `json:"deployments"`
	Daemonsets              List[workload.Daemonset]       `json:"daemonsets"`
	Pods                    List[workload.Pod]             `json:"pods"`
	ReplicaSets             List[workload.ReplicaSet]      `json:"replicasets"`
	ReplicaSetDeploymentMap map[string]string              `json:"replicaset_deployment_map"`
	Metrics                 map[string]workload.PodMetrics `json:"metrics"`
	FetchedAt               time.Time                      `json:"fetched_at"`
}

// Summary is the classified view of a snapshot.
type Summary struct {
	Deployments      []DeploymentSummary `json:"deployments"`
	Daemonsets       []DaemonsetSummary  `json:"daemonsets"`
	MetricsAvailable bool                `json:"metrics_available"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

type DeploymentSummary struct {
	Name        string                   `json:"name"`
	UID         string                   `json:"uid"`
	State       workload.DeploymentState `json:"state"`
	Indicator   string                   `json:"indicator"`
	Desired     int32                    `json:"desired"`
	Available   int32                    `json:"available"`
	Description string                   `json:"description,omitempty"`
	Important   bool                     `json:"important"`
	Protected   bool                     `json:"protected"`
	Uptime      string                   `json:"uptime,omitempty"`
	UptimeClass workload.UptimeClass     `json:"uptime_class,omitempty"`
	OffAt       *time.Time               `json:"off_at,omitempty"`
	Utilization UtilizationSummary       `json:"utilization"`
	Pods        []PodSummary             `json:"pods"`
}

type DaemonsetSummary struct {
	Name        string                  `json:"name"`
	UID         string                  `json:"uid"`
	State       workload.DaemonsetState `json:"state"`
	Indicator   string                  `json:"indicator"`
	Desired     int32                   `json:"desired"`
	Available   int32                   `json:"available"`
	Utilization UtilizationSummary      `json:"utilization"`
	Pods        []PodSummary            `json:"pods"`
}

type UtilizationSummary struct {
	CPU     *float64           `json:"cpu"`
	Mem     *float64           `json:"mem"`
	CPUBand workload.GaugeBand `json:"cpu_band,omitempty"`
	MemBand workload.GaugeBand `json:"mem_band,omitempty"`
}

type PodSummary struct {
	Name        string               `json:"name"`
	NodeName    string               `json:"node_name,omitempty"`
	Status      string               `json:"status"`
	Readiness   workload.Readiness   `json:"readiness"`
	Restarts    int                  `json:"restarts"`
	Uptime      string               `json:"uptime,omitempty"`
	UptimeClass workload.UptimeClass `json:"uptime_class,omitempty"`
	Important   bool                 `json:"important"`
	Containers  []string             `json:"containers"`
	Metrics     workload.PodMetrics  `json:"metrics,omitempty"`
}

// PodDeletion is the outcome of deleting one pod during a bulk delete.
type PodDeletion struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}
