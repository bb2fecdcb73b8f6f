package dashboard

import (
	"context"
	"time"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// Repository is the port interface for cluster operations.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	ListWorkloadsQuery(
		ctx context.Context,
		namespace string,
	) (*Workloads, error)

	ListPodUsageQuery(
		ctx context.Context,
		namespace string,
	) ([]PodUsage, error)

	GetDeploymentQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*workload.Deployment, error)

	// ScaleDeploymentCommand sets spec.replicas and merges the given
	// annotations in a single patch.
	ScaleDeploymentCommand(
		ctx context.Context,
		namespace,
		name string,
		replicas int32,
		annotations map[string]string,
	) (*workload.Deployment, error)

	// PatchDeploymentAnnotationsCommand merges annotations; an empty value
	// removes the key.
	PatchDeploymentAnnotationsCommand(
		ctx context.Context,
		namespace,
		name string,
		annotations map[string]string,
	) error

	PatchPodTemplateLabelsCommand(
		ctx context.Context,
		namespace,
		name string,
		labels map[string]string,
	) error

	DeletePodCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	GetPodLogQuery(
		ctx context.Context,
		namespace,
		name string,
		opts LogOptions,
	) ([]byte, error)
}

// Recorder receives the classified state after every refresh.
type Recorder interface {
	SweepWorkloads()
	SetDeploymentState(name, state string, desired, available int32)
	SetDaemonsetState(name, state string, desired, available int32)
	SetPodRestarts(owner, pod string, restarts int)
	SetUtilization(kind, name, resource string, ratio float64)
	ObserveRefresh(duration time.Duration, err error)
	IncAction(action, outcome string)
}

// Scheduler computes the next occurrence of a cron expression.
type Scheduler interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// conflict is a private interface for checking optimistic concurrency
// conflicts without importing the adapter package.
type conflict interface {
	IsConflict()
}
