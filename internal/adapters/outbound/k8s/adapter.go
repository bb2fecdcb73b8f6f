package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

type adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
) dashboard.Repository {
	return &adapter{
		logger:           logger,
		clientset:        clientset,
		metricsClientset: metricsClientset,
	}
}

var _ dashboard.Repository = (*adapter)(nil)

// ListWorkloadsQuery lists deployments, daemonsets, pods and replicasets of
// the namespace in parallel.
func (a *adapter) ListWorkloadsQuery(
	ctx context.Context,
	namespace string,
) (*dashboard.Workloads, error) {
	var out dashboard.Workloads

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := a.clientset.AppsV1().Deployments(namespace).List(gctx, metav1.ListOptions{})
		if err != nil {
			return fmt.Errorf("list deployments: %w", err)
		}

		out.Deployments = make([]workload.Deployment, 0, len(list.Items))
		for i := range list.Items {
			out.Deployments = append(out.Deployments, toDomainDeployment(&list.Items[i]))
		}

		return nil
	})

	g.Go(func() error {
		list, err := a.clientset.AppsV1().DaemonSets(namespace).List(gctx, metav1.ListOptions{})
		if err != nil {
			return fmt.Errorf("list daemonsets: %w", err)
		}

		out.Daemonsets = make([]workload.Daemonset, 0, len(list.Items))
		for i := range list.Items {
			out.Daemonsets = append(out.Daemonsets, toDomainDaemonset(&list.Items[i]))
		}

		return nil
	})

	g.Go(func() error {
		list, err := a.clientset.CoreV1().Pods(namespace).List(gctx, metav1.ListOptions{})
		if err != nil {
			return fmt.Errorf("list pods: %w", err)
		}

		out.Pods = make([]workload.Pod, 0, len(list.Items))
		for i := range list.Items {
			out.Pods = append(out.Pods, toDomainPod(&list.Items[i]))
		}

		return nil
	})

	g.Go(func() error {
		list, err := a.clientset.AppsV1().ReplicaSets(namespace).List(gctx, metav1.ListOptions{})
		if err != nil {
			return fmt.Errorf("list replicasets: %w", err)
		}

		out.ReplicaSets = make([]workload.ReplicaSet, 0, len(list.Items))
		for i := range list.Items {
			out.ReplicaSets = append(out.ReplicaSets, toDomainReplicaSet(&list.Items[i]))
		}

		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *adapter) ListPodUsageQuery(
	ctx context.Context,
	namespace string,
) ([]dashboard.PodUsage, error) {
	list, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pod metrics: %w", err)
	}

	out := make([]dashboard.PodUsage, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, toDomainPodUsage(&list.Items[i]))
	}

	a.logger.DebugContext(ctx, "pod metrics listed",
		"namespace", namespace,
		"count", len(out),
	)

	return out, nil
}

func (a *adapter) GetDeploymentQuery(
	ctx context.Context,
	namespace,
	name string,
) (*workload.Deployment, error) {
	d, err := a.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get deployment: %w", classify(err))
	}

	out := toDomainDeployment(d)

	return &out, nil
}

// ScaleDeploymentCommand sets spec.replicas and the given annotations in one
// strategic merge patch.
func (a *adapter) ScaleDeploymentCommand(
	ctx context.Context,
	namespace,
	name string,
	replicas int32,
	annotations map[string]string,
) (*workload.Deployment, error) {
	patch := map[string]any{
		"spec": map[string]any{
			"replicas": replicas,
		},
	}

	if len(annotations) > 0 {
		patch["metadata"] = map[string]any{
			"annotations": annotationPatch(annotations),
		}
	}

	d, err := a.patchDeployment(ctx, namespace, name, patch)
	if err != nil {
		return nil, fmt.Errorf("scale deployment: %w", err)
	}

	out := toDomainDeployment(d)

	return &out, nil
}

func (a *adapter) PatchDeploymentAnnotationsCommand(
	ctx context.Context,
	namespace,
	name string,
	annotations map[string]string,
) error {
	patch := map[string]any{
		"metadata": map[string]any{
			"annotations": annotationPatch(annotations),
		},
	}

	_, err := a.patchDeployment(ctx, namespace, name, patch)
	if err != nil {
		return fmt.Errorf("patch deployment annotations: %w", err)
	}

	return nil
}

// PatchPodTemplateLabelsCommand changes pod template labels, which rolls the
// deployment's pods.
func (a *adapter) PatchPodTemplateLabelsCommand(
	ctx context.Context,
	namespace,
	name string,
	labels map[string]string,
) error {
	patch := map[string]any{
		"spec": map[string]any{
			"template": map[string]any{
				"metadata": map[string]any{
					"labels": labels,
				},
			},
		},
	}

	_, err := a.patchDeployment(ctx, namespace, name, patch)
	if err != nil {
		return fmt.Errorf("patch pod template labels: %w", err)
	}

	return nil
}

func (a *adapter) patchDeployment(
	ctx context.Context,
	namespace,
	name string,
	patch map[string]any,
) (*appsv1.Deployment, error) {
	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal deployment patch: %w", err)
	}

	d, err := a.clientset.AppsV1().Deployments(namespace).Patch(
		ctx,
		name,
		types.StrategicMergePatchType,
		patchBytes,
		metav1.PatchOptions{},
	)
	if err != nil {
		return nil, classify(err)
	}

	return d, nil
}

// annotationPatch turns empty values into nulls, which removes the keys.
func annotationPatch(annotations map[string]string) map[string]any {
	out := make(map[string]any, len(annotations))

	for key, value := range annotations {
		if value == "" {
			out[key] = nil

			continue
		}

		out[key] = value
	}

	return out
}

func (a *adapter) DeletePodCommand(
	ctx context.Context,
	namespace,
	name string,
) error {
	err := a.clientset.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete pod: %w", classify(err))
	}

	return nil
}

func (a *adapter) GetPodLogQuery(
	ctx context.Context,
	namespace,
	name string,
	opts dashboard.LogOptions,
) ([]byte, error) {
	logOpts := &corev1.PodLogOptions{
		Container:  opts.Container,
		Timestamps: opts.Timestamps,
	}

	if opts.TailLines > 0 {
		tailLines := opts.TailLines
		logOpts.TailLines = &tailLines
	}

	out, err := a.clientset.CoreV1().Pods(namespace).GetLogs(name, logOpts).DoRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pod log: %w", classify(err))
	}

	return out, nil
}
