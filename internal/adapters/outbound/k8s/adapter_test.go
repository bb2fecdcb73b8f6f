package k8s_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	metricsfake "k8s.io/metrics/pkg/client/clientset/versioned/fake"

	"github.com/kubeonoff/kubeonoff/internal/adapters/outbound/k8s"
	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

const testNamespace = "dev"

func int32Ptr(v int32) *int32 {
	return &v
}

func newDeployment(name string, replicas int32, annotations map[string]string) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Namespace:   testNamespace,
			UID:         types.UID("d-" + name),
			Annotations: annotations,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: int32Ptr(replicas),
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{"app": name},
				},
			},
		},
		Status: appsv1.DeploymentStatus{
			Replicas:          replicas,
			ReadyReplicas:     replicas,
			AvailableReplicas: replicas,
		},
	}
}

func newPod(name string) *corev1.Pod {
	started := metav1.NewTime(time.Date(2026, 2, 16, 16, 0, 0, 0, time.UTC))

	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: testNamespace,
			UID:       types.UID("p-" + name),
			OwnerReferences: []metav1.OwnerReference{
				{Kind: "ReplicaSet", Name: "rs-web", UID: "rs-web"},
			},
		},
		Spec: corev1.PodSpec{
			NodeName: "node-1",
			Containers: []corev1.Container{
				{
					Name: "app",
					Resources: corev1.ResourceRequirements{
						Limits: corev1.ResourceList{
							corev1.ResourceCPU:    resource.MustParse("500m"),
							corev1.ResourceMemory: resource.MustParse("256Mi"),
						},
					},
				},
				{Name: "sidecar"},
			},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{
				{
					Name:         "app",
					Ready:        true,
					RestartCount: 2,
					State:        corev1.ContainerState{Running: &corev1.ContainerStateRunning{StartedAt: started}},
				},
				{
					Name: "sidecar",
					State: corev1.ContainerState{
						Terminated: &corev1.ContainerStateTerminated{Reason: "Completed", ExitCode: 0},
					},
				},
			},
		},
	}
}

func newAdapter(t *testing.T, objects ...runtime.Object) (dashboard.Repository, *fake.Clientset, *metricsfake.Clientset) {
	t.Helper()

	clientset := fake.NewSimpleClientset(objects...)
	metricsClientset := metricsfake.NewSimpleClientset()

	return k8s.New(slog.Default(), clientset, metricsClientset), clientset, metricsClientset
}

func TestAdapter_ListWorkloadsQuery(t *testing.T) {
	t.Parallel()

	repo, _, _ := newAdapter(t,
		newDeployment("web", 2, map[string]string{workload.AnnotationImportant: "true"}),
		&appsv1.DaemonSet{
			ObjectMeta: metav1.ObjectMeta{Name: "agent", Namespace: testNamespace, UID: "ds-agent"},
			Status:     appsv1.DaemonSetStatus{DesiredNumberScheduled: 3, NumberAvailable: 2},
		},
		&appsv1.ReplicaSet{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "rs-web",
				Namespace: testNamespace,
				UID:       "rs-web",
				OwnerReferences: []metav1.OwnerReference{
					{Kind: "Deployment", Name: "web", UID: "d-web"},
				},
			},
		},
		newPod("web-a"),
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "elsewhere", Namespace: "prod"}},
	)

	got, err := repo.ListWorkloadsQuery(t.Context(), testNamespace)
	require.NoError(t, err)

	require.Len(t, got.Deployments, 1)
	d := got.Deployments[0]
	require.Equal(t, "web", d.Metadata.Name)
	require.Equal(t, "d-web", d.Metadata.UID)
	require.Equal(t, int32(2), d.Spec.DesiredReplicas())
	require.Equal(t, "web", d.Spec.Template.Metadata.Labels["app"])
	require.Equal(t, workload.DeploymentOn, workload.ClassifyDeploymentState(d))
	require.True(t, workload.IsImportant(d))

	require.Len(t, got.Daemonsets, 1)
	require.Equal(t, workload.DaemonsetPending, workload.ClassifyDaemonsetState(got.Daemonsets[0]))

	require.Len(t, got.ReplicaSets, 1)
	require.Equal(t, "d-web", got.ReplicaSets[0].Metadata.OwnerReferences[0].UID)

	require.Len(t, got.Pods, 1)
	pod := got.Pods[0]
	require.Equal(t, "node-1", pod.Spec.NodeName)
	require.Equal(t, "Completed", workload.DerivePodStatusReason(pod))
	require.Equal(t, 2, workload.CountRestarts(pod))
	require.Len(t, pod.Spec.Containers, 2)
	require.Nil(t, pod.Spec.Containers[1].Resources.Limits)

	limit := pod.Spec.Containers[0].Resources.Limits["memory"]
	require.Equal(t, "256Mi", limit.String())
}

func TestAdapter_ListWorkloadsQuery_PodWithoutStatuses(t *testing.T) {
	t.Parallel()

	repo, _, _ := newAdapter(t, &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "pending", Namespace: testNamespace},
		Status:     corev1.PodStatus{Phase: corev1.PodPending},
	})

	got, err := repo.ListWorkloadsQuery(t.Context(), testNamespace)
	require.NoError(t, err)
	require.Len(t, got.Pods, 1)
	require.Nil(t, got.Pods[0].Status.ContainerStatuses)
	require.Equal(t, workload.ReadinessUnknown, workload.ComputeReadiness(got.Pods[0]))
}

func TestAdapter_ListWorkloadsQuery_RunningWithoutStartTime(t *testing.T) {
	t.Parallel()

	pod := newPod("web-a")
	pod.Status.ContainerStatuses[0].State.Running.StartedAt = metav1.Time{}

	repo, _, _ := newAdapter(t, pod)

	got, err := repo.ListWorkloadsQuery(t.Context(), testNamespace)
	require.NoError(t, err)
	require.Len(t, got.Pods, 1)

	running := got.Pods[0].Status.ContainerStatuses[0].State.Running
	require.NotNil(t, running)
	require.Nil(t, running.StartedAt)
}

func TestAdapter_ListWorkloadsQuery_Error(t *testing.T) {
	t.Parallel()

	repo, clientset, _ := newAdapter(t)
	clientset.PrependReactor("list", "daemonsets", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewForbidden(schema.GroupResource{Group: "apps", Resource: "daemonsets"}, "", nil)
	})

	_, err := repo.ListWorkloadsQuery(t.Context(), testNamespace)
	require.Error(t, err)
	require.True(t, apierrors.IsForbidden(err))
	require.Contains(t, err.Error(), "list daemonsets")
}

func TestAdapter_ListPodUsageQuery(t *testing.T) {
	t.Parallel()

	repo, _, metricsClientset := newAdapter(t)
	metricsClientset.PrependReactor("list", "pods", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, &metricsv1beta1.PodMetricsList{
			Items: []metricsv1beta1.PodMetrics{
				{
					ObjectMeta: metav1.ObjectMeta{Name: "web-a", Namespace: testNamespace},
					Containers: []metricsv1beta1.ContainerMetrics{
						{
							Name: "app",
							Usage: corev1.ResourceList{
								corev1.ResourceCPU:    resource.MustParse("250m"),
								corev1.ResourceMemory: resource.MustParse("64Mi"),
							},
						},
						{
							Name:  "sidecar",
							Usage: corev1.ResourceList{corev1.ResourceMemory: resource.MustParse("1Mi")},
						},
					},
				},
			},
		}, nil
	})

	got, err := repo.ListPodUsageQuery(t.Context(), testNamespace)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "web-a", got[0].Name)
	require.Len(t, got[0].Containers, 2)
	require.Equal(t, "250m", got[0].Containers[0].CPU.String())
	require.Nil(t, got[0].Containers[1].CPU)
	require.Equal(t, "1Mi", got[0].Containers[1].Memory.String())
}

func TestAdapter_GetDeploymentQuery(t *testing.T) {
	t.Parallel()

	repo, _, _ := newAdapter(t, newDeployment("web", 1, nil))

	got, err := repo.GetDeploymentQuery(t.Context(), testNamespace, "web")
	require.NoError(t, err)
	require.Equal(t, "web", got.Metadata.Name)

	_, err = repo.GetDeploymentQuery(t.Context(), testNamespace, "nope")
	require.Error(t, err)
	require.True(t, dashboard.IsNotFound(err))

	var notFound *k8s.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAdapter_ScaleDeploymentCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		giveAnnotations map[string]string
		giveReplicas    int32
		wantAnnotations map[string]string
	}{
		{
			name:            "scale and annotate",
			giveAnnotations: map[string]string{workload.AnnotationOriginalReplicas: "3"},
			giveReplicas:    0,
			wantAnnotations: map[string]string{
				workload.AnnotationDescription:      "web frontend",
				workload.AnnotationOriginalReplicas: "3",
			},
		},
		{
			name:            "scale only",
			giveAnnotations: map[string]string{},
			giveReplicas:    5,
			wantAnnotations: map[string]string{workload.AnnotationDescription: "web frontend"},
		},
		{
			name:            "empty value removes annotation",
			giveAnnotations: map[string]string{workload.AnnotationDescription: ""},
			giveReplicas:    1,
			wantAnnotations: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, clientset, _ := newAdapter(t, newDeployment("web", 3, map[string]string{
				workload.AnnotationDescription: "web frontend",
			}))

			got, err := repo.ScaleDeploymentCommand(t.Context(), testNamespace, "web", tt.giveReplicas, tt.giveAnnotations)
			require.NoError(t, err)
			require.Equal(t, tt.giveReplicas, got.Spec.DesiredReplicas())

			stored, err := clientset.AppsV1().Deployments(testNamespace).Get(t.Context(), "web", metav1.GetOptions{})
			require.NoError(t, err)
			require.Equal(t, tt.giveReplicas, *stored.Spec.Replicas)

			if tt.wantAnnotations == nil {
				require.Empty(t, stored.Annotations)

				return
			}

			require.Equal(t, tt.wantAnnotations, stored.Annotations)
		})
	}
}

func TestAdapter_ScaleDeploymentCommand_Conflict(t *testing.T) {
	t.Parallel()

	repo, clientset, _ := newAdapter(t, newDeployment("web", 3, nil))
	clientset.PrependReactor("patch", "deployments", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewConflict(
			schema.GroupResource{Group: "apps", Resource: "deployments"}, "web", nil)
	})

	_, err := repo.ScaleDeploymentCommand(t.Context(), testNamespace, "web", 0, nil)
	require.Error(t, err)
	require.True(t, dashboard.IsConflict(err))
	require.False(t, dashboard.IsNotFound(err))
}

func TestAdapter_PatchDeploymentAnnotationsCommand(t *testing.T) {
	t.Parallel()

	repo, clientset, _ := newAdapter(t, newDeployment("web", 1, map[string]string{
		workload.AnnotationOffAt: "2026-02-16T19:00:00Z",
	}))

	err := repo.PatchDeploymentAnnotationsCommand(t.Context(), testNamespace, "web", map[string]string{
		workload.AnnotationOffAt: "2026-02-17T19:00:00Z",
	})
	require.NoError(t, err)

	stored, err := clientset.AppsV1().Deployments(testNamespace).Get(t.Context(), "web", metav1.GetOptions{})
	require.NoError(t, err)
	require.Equal(t, "2026-02-17T19:00:00Z", stored.Annotations[workload.AnnotationOffAt])
	require.Equal(t, int32(1), *stored.Spec.Replicas)

	err = repo.PatchDeploymentAnnotationsCommand(t.Context(), testNamespace, "nope", map[string]string{"a": "b"})
	require.True(t, dashboard.IsNotFound(err))
}

func TestAdapter_PatchPodTemplateLabelsCommand(t *testing.T) {
	t.Parallel()

	repo, clientset, _ := newAdapter(t, newDeployment("web", 1, nil))

	err := repo.PatchPodTemplateLabelsCommand(t.Context(), testNamespace, "web", map[string]string{
		workload.LabelRollingRestartSerial: "1",
	})
	require.NoError(t, err)

	stored, err := clientset.AppsV1().Deployments(testNamespace).Get(t.Context(), "web", metav1.GetOptions{})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"app":                              "web",
		workload.LabelRollingRestartSerial: "1",
	}, stored.Spec.Template.Labels)
}

func TestAdapter_DeletePodCommand(t *testing.T) {
	t.Parallel()

	repo, clientset, _ := newAdapter(t, newPod("web-a"))

	require.NoError(t, repo.DeletePodCommand(t.Context(), testNamespace, "web-a"))

	_, err := clientset.CoreV1().Pods(testNamespace).Get(t.Context(), "web-a", metav1.GetOptions{})
	require.True(t, apierrors.IsNotFound(err))

	err = repo.DeletePodCommand(t.Context(), testNamespace, "web-a")
	require.True(t, dashboard.IsNotFound(err))
}

func TestAdapter_GetPodLogQuery(t *testing.T) {
	t.Parallel()

	repo, clientset, _ := newAdapter(t, newPod("web-a"))

	got, err := repo.GetPodLogQuery(t.Context(), testNamespace, "web-a", dashboard.LogOptions{
		Container:  "app",
		TailLines:  100,
		Timestamps: true,
	})
	require.NoError(t, err)
	require.Equal(t, "fake logs", string(got))

	var opts *corev1.PodLogOptions

	for _, action := range clientset.Actions() {
		if action.GetSubresource() != "log" {
			continue
		}

		generic, ok := action.(k8stesting.GenericAction)
		require.True(t, ok)

		opts, ok = generic.GetValue().(*corev1.PodLogOptions)
		require.True(t, ok)
	}

	require.NotNil(t, opts)
	require.Equal(t, "app", opts.Container)
	require.True(t, opts.Timestamps)
	require.Equal(t, int64(100), *opts.TailLines)
}
