package k8s

import (
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

func toDomainMeta(meta *metav1.ObjectMeta) workload.ObjectMeta {
	out := workload.ObjectMeta{
		Name:              meta.Name,
		Namespace:         meta.Namespace,
		UID:               string(meta.UID),
		DeletionTimestamp: timePtr(meta.DeletionTimestamp),
		Labels:            meta.Labels,
		Annotations:       meta.Annotations,
	}

	if len(meta.OwnerReferences) > 0 {
		out.OwnerReferences = make([]workload.OwnerReference, 0, len(meta.OwnerReferences))
		for _, ref := range meta.OwnerReferences {
			out.OwnerReferences = append(out.OwnerReferences, workload.OwnerReference{
				Kind: ref.Kind,
				Name: ref.Name,
				UID:  string(ref.UID),
			})
		}
	}

	return out
}

func timePtr(t *metav1.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}

	out := t.Time

	return &out
}

func toDomainDeployment(d *appsv1.Deployment) workload.Deployment {
	return workload.Deployment{
		Metadata: toDomainMeta(&d.ObjectMeta),
		Spec: workload.DeploymentSpec{
			Replicas: d.Spec.Replicas,
			Template: workload.PodTemplateSpec{
				Metadata: workload.TemplateMeta{Labels: d.Spec.Template.Labels},
			},
		},
		Status: workload.DeploymentStatus{
			Replicas:            d.Status.Replicas,
			ReadyReplicas:       d.Status.ReadyReplicas,
			UnavailableReplicas: d.Status.UnavailableReplicas,
			AvailableReplicas:   d.Status.AvailableReplicas,
		},
	}
}

func toDomainDaemonset(ds *appsv1.DaemonSet) workload.Daemonset {
	return workload.Daemonset{
		Metadata: toDomainMeta(&ds.ObjectMeta),
		Status: workload.DaemonsetStatus{
			DesiredNumberScheduled: ds.Status.DesiredNumberScheduled,
			NumberAvailable:        ds.Status.NumberAvailable,
		},
	}
}

func toDomainReplicaSet(rs *appsv1.ReplicaSet) workload.ReplicaSet {
	return workload.ReplicaSet{Metadata: toDomainMeta(&rs.ObjectMeta)}
}

func toDomainPod(pod *corev1.Pod) workload.Pod {
	out := workload.Pod{
		Metadata: toDomainMeta(&pod.ObjectMeta),
		Spec: workload.PodSpec{
			NodeName:   pod.Spec.NodeName,
			Containers: make([]workload.Container, 0, len(pod.Spec.Containers)),
		},
		Status: workload.PodStatus{
			Phase:  string(pod.Status.Phase),
			Reason: pod.Status.Reason,
		},
	}

	for i := range pod.Spec.Containers {
		c := &pod.Spec.Containers[i]
		out.Spec.Containers = append(out.Spec.Containers, workload.Container{
			Name:      c.Name,
			Resources: workload.ContainerResources{Limits: toDomainLimits(c.Resources.Limits)},
		})
	}

	// A pod that was never scheduled reports no container statuses at all.
	if pod.Status.ContainerStatuses != nil {
		out.Status.ContainerStatuses = make([]workload.ContainerStatus, 0, len(pod.Status.ContainerStatuses))
		for i := range pod.Status.ContainerStatuses {
			out.Status.ContainerStatuses = append(out.Status.ContainerStatuses,
				toDomainContainerStatus(&pod.Status.ContainerStatuses[i]))
		}
	}

	return out
}

func toDomainLimits(limits corev1.ResourceList) map[string]resource.Quantity {
	if len(limits) == 0 {
		return nil
	}

	out := make(map[string]resource.Quantity, len(limits))
	for name, q := range limits {
		out[string(name)] = q
	}

	return out
}

func toDomainContainerStatus(cs *corev1.ContainerStatus) workload.ContainerStatus {
	out := workload.ContainerStatus{
		Name:         cs.Name,
		Ready:        cs.Ready,
		RestartCount: int(cs.RestartCount),
	}

	switch {
	case cs.State.Waiting != nil:
		out.State.Waiting = &workload.ContainerStateWaiting{Reason: cs.State.Waiting.Reason}
	case cs.State.Running != nil:
		started := cs.State.Running.StartedAt
		out.State.Running = &workload.ContainerStateRunning{StartedAt: timePtr(&started)}
	case cs.State.Terminated != nil:
		exitCode := cs.State.Terminated.ExitCode
		signal := cs.State.Terminated.Signal
		out.State.Terminated = &workload.ContainerStateTerminated{
			Reason:   cs.State.Terminated.Reason,
			ExitCode: &exitCode,
			Signal:   &signal,
		}
	}

	return out
}

func toDomainPodUsage(m *metricsv1beta1.PodMetrics) dashboard.PodUsage {
	out := dashboard.PodUsage{
		Name:       m.Name,
		Containers: make([]dashboard.ContainerUsageSample, 0, len(m.Containers)),
	}

	for i := range m.Containers {
		c := &m.Containers[i]
		out.Containers = append(out.Containers, dashboard.ContainerUsageSample{
			Name:   c.Name,
			CPU:    quantityPtr(c.Usage, corev1.ResourceCPU),
			Memory: quantityPtr(c.Usage, corev1.ResourceMemory),
		})
	}

	return out
}

func quantityPtr(list corev1.ResourceList, name corev1.ResourceName) *resource.Quantity {
	q, ok := list[name]
	if !ok {
		return nil
	}

	return &q
}
