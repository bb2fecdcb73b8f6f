package workload

import (
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
)

// ObjectMeta is the subset of Kubernetes object metadata the dashboard reads.
// Field names follow the cluster API JSON so raw API lists decode directly.
type ObjectMeta struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace,omitempty"`
	UID               string            `json:"uid"`
	DeletionTimestamp *time.Time        `json:"deletionTimestamp,omitempty"`
	Labels            map[string]string `json:"labels,omitempty"`
	Annotations       map[string]string `json:"annotations,omitempty"`
	OwnerReferences   []OwnerReference  `json:"ownerReferences,omitempty"`
}

// OwnerReference points from a dependent object to its controller.
type OwnerReference struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// Pod is a read-only snapshot of a pod, optionally carrying per-container
// utilisation attached from the metrics API.
type Pod struct {
	Metadata ObjectMeta `json:"metadata"`
	Spec     PodSpec    `json:"spec"`
	Status   PodStatus  `json:"status"`
	Metrics  PodMetrics `json:"metrics,omitempty"`
}

type PodSpec struct {
	NodeName   string      `json:"nodeName,omitempty"`
	Containers []Container `json:"containers"`
}

type Container struct {
	Name      string             `json:"name"`
	Resources ContainerResources `json:"resources,omitzero"`
}

// ContainerResources carries the limits used to turn usage into ratios.
// Keys are resource names such as "cpu" and "memory".
type ContainerResources struct {
	Limits map[string]resource.Quantity `json:"limits,omitempty"`
}

type PodStatus struct {
	Phase  string `json:"phase"`
	Reason string `json:"reason,omitempty"`
	// ContainerStatuses is nil when the API did not report it, which is not
	// the same as an empty list.
	ContainerStatuses []ContainerStatus `json:"containerStatuses"`
}

type ContainerStatus struct {
	Name         string         `json:"name"`
	Ready        bool           `json:"ready"`
	RestartCount int            `json:"restartCount"`
	State        ContainerState `json:"state"`
}

// ContainerState holds exactly one of Waiting, Running or Terminated.
type ContainerState struct {
	Waiting    *ContainerStateWaiting    `json:"waiting,omitempty"`
	Running    *ContainerStateRunning    `json:"running,omitempty"`
	Terminated *ContainerStateTerminated `json:"terminated,omitempty"`
}

type ContainerStateWaiting struct {
	Reason string `json:"reason,omitempty"`
}

type ContainerStateRunning struct {
	StartedAt *time.Time `json:"startedAt,omitempty"`
}

type ContainerStateTerminated struct {
	Reason   string `json:"reason,omitempty"`
	ExitCode *int32 `json:"exitCode,omitempty"`
	Signal   *int32 `json:"signal,omitempty"`
}

// PodMetrics maps a container name to its usage relative to its limits.
type PodMetrics map[string]ContainerUsage

// ContainerUsage holds usage divided by limit. A nil ratio means the
// container has no limit for that resource.
type ContainerUsage struct {
	CPURatio *float64 `json:"cpu_ratio,omitempty"`
	MemRatio *float64 `json:"mem_ratio,omitempty"`
}

// Deployment is a read-only snapshot of an apps/v1 Deployment.
type Deployment struct {
	Metadata ObjectMeta       `json:"metadata"`
	Spec     DeploymentSpec   `json:"spec"`
	Status   DeploymentStatus `json:"status"`
}

type DeploymentSpec struct {
	Replicas *int32          `json:"replicas,omitempty"`
	Template PodTemplateSpec `json:"template,omitzero"`
}

// PodTemplateSpec keeps only the template metadata; the rolling restart
// serial lives in its labels.
type PodTemplateSpec struct {
	Metadata TemplateMeta `json:"metadata,omitzero"`
}

type TemplateMeta struct {
	Labels map[string]string `json:"labels,omitempty"`
}

// DesiredReplicas returns spec.replicas, 0 when absent.
func (s DeploymentSpec) DesiredReplicas() int32 {
	if s.Replicas == nil {
		return 0
	}

	return *s.Replicas
}

type DeploymentStatus struct {
	Replicas            int32 `json:"replicas,omitempty"`
	ReadyReplicas       int32 `json:"readyReplicas,omitempty"`
	UnavailableReplicas int32 `json:"unavailableReplicas,omitempty"`
	AvailableReplicas   int32 `json:"availableReplicas,omitempty"`
}

// Daemonset is a read-only snapshot of an apps/v1 DaemonSet.
type Daemonset struct {
	Metadata ObjectMeta      `json:"metadata"`
	Status   DaemonsetStatus `json:"status"`
}

type DaemonsetStatus struct {
	DesiredNumberScheduled int32 `json:"desiredNumberScheduled,omitempty"`
	NumberAvailable        int32 `json:"numberAvailable,omitempty"`
}

// ReplicaSet is kept only to map pods back to their deployment.
type ReplicaSet struct {
	Metadata ObjectMeta `json:"metadata"`
}
