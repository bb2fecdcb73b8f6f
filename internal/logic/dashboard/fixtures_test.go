package dashboard_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/api/resource"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/kubeonoff/kubeonoff/internal/infra/metrics"
	"github.com/kubeonoff/kubeonoff/internal/infra/schedule"
	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard/mocks"
	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

const testNamespace = "dev"

// testNow is a Monday afternoon.
var testNow = time.Date(2026, 2, 16, 17, 0, 0, 0, time.UTC)

// testNotFoundError implements the service's private not-found interface so
// the mock can return it and the service recognizes it.
type testNotFoundError struct{}

func (testNotFoundError) Error() string { return "not found" }
func (testNotFoundError) IsNotFound()   {}

type testEnv struct {
	svc      *dashboard.Service
	repo     *mocks.MockRepository
	clock    *testingclock.FakeClock
	registry *prometheus.Registry
}

func newTestEnv(t *testing.T, mutate ...func(*dashboard.Config)) *testEnv {
	t.Helper()

	cfg := dashboard.Config{
		Namespace:       testNamespace,
		RefreshInterval: 5 * time.Second,
		SnapshotTTL:     2 * time.Second,
		MetricsTTL:      60 * time.Second,
		LogTailLines:    1000,
	}

	for _, m := range mutate {
		m(&cfg)
	}

	repo := mocks.NewMockRepository(t)
	clk := testingclock.NewFakeClock(testNow)
	reg := prometheus.NewRegistry()

	svc := dashboard.New(
		slog.Default(),
		repo,
		metrics.New(reg),
		schedule.New(""),
		clk,
		cfg,
	)

	return &testEnv{svc: svc, repo: repo, clock: clk, registry: reg}
}

// counterValue sums every series of a counter family.
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}

		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	return total
}

func int32Ptr(v int32) *int32 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func qtyPtr(s string) *resource.Quantity {
	q := resource.MustParse(s)

	return &q
}

func newDeployment(name, uid string, replicas, available int32) workload.Deployment {
	return workload.Deployment{
		Metadata: workload.ObjectMeta{Name: name, UID: uid, Annotations: map[string]string{}},
		Spec:     workload.DeploymentSpec{Replicas: int32Ptr(replicas)},
		Status: workload.DeploymentStatus{
			Replicas:          replicas,
			ReadyReplicas:     available,
			AvailableReplicas: available,
		},
	}
}

func newReplicaSet(uid, deploymentUID string) workload.ReplicaSet {
	return workload.ReplicaSet{
		Metadata: workload.ObjectMeta{
			Name: uid,
			UID:  uid,
			OwnerReferences: []workload.OwnerReference{
				{Kind: "Deployment", Name: deploymentUID, UID: deploymentUID},
			},
		},
	}
}

// newRunningPod has one ready "app" container with cpu and memory limits,
// running for the given duration.
func newRunningPod(name, ownerKind, ownerUID string, running time.Duration) workload.Pod {
	return workload.Pod{
		Metadata: workload.ObjectMeta{
			Name: name,
			UID:  name,
			OwnerReferences: []workload.OwnerReference{
				{Kind: ownerKind, UID: ownerUID},
			},
		},
		Spec: workload.PodSpec{
			Containers: []workload.Container{
				{
					Name: "app",
					Resources: workload.ContainerResources{
						Limits: map[string]resource.Quantity{
							"cpu":    resource.MustParse("500m"),
							"memory": resource.MustParse("256Mi"),
						},
					},
				},
			},
		},
		Status: workload.PodStatus{
			Phase: "Running",
			ContainerStatuses: []workload.ContainerStatus{
				{
					Name:         "app",
					Ready:        true,
					RestartCount: 1,
					State: workload.ContainerState{
						Running: &workload.ContainerStateRunning{StartedAt: timePtr(testNow.Add(-running))},
					},
				},
			},
		},
	}
}

// newWorkloads is a namespace with one deployment (web, two pods), one
// daemonset (agent) and the dashboard's own deployment.
func newWorkloads() *dashboard.Workloads {
	return &dashboard.Workloads{
		Deployments: []workload.Deployment{
			newDeployment("web", "d-web", 2, 2),
			newDeployment("kubeonoff", "d-self", 1, 1),
		},
		Daemonsets: []workload.Daemonset{
			{
				Metadata: workload.ObjectMeta{Name: "agent", UID: "ds-agent"},
				Status:   workload.DaemonsetStatus{DesiredNumberScheduled: 1, NumberAvailable: 1},
			},
		},
		Pods: []workload.Pod{
			newRunningPod("web-a", "ReplicaSet", "rs-web", 10*time.Minute),
			newRunningPod("web-b", "ReplicaSet", "rs-web", 2*time.Hour),
			newRunningPod("agent-x", "DaemonSet", "ds-agent", 30*time.Second),
			newRunningPod("kubeonoff-1", "ReplicaSet", "rs-self", time.Hour),
		},
		ReplicaSets: []workload.ReplicaSet{
			newReplicaSet("rs-web", "d-web"),
			newReplicaSet("rs-self", "d-self"),
		},
	}
}

func newUsage() []dashboard.PodUsage {
	return []dashboard.PodUsage{
		{
			Name: "web-a",
			Containers: []dashboard.ContainerUsageSample{
				{Name: "app", CPU: qtyPtr("250m"), Memory: qtyPtr("64Mi")},
			},
		},
		{
			Name: "web-b",
			Containers: []dashboard.ContainerUsageSample{
				{Name: "app", CPU: qtyPtr("50m"), Memory: qtyPtr("192Mi")},
			},
		},
	}
}
