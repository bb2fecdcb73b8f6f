package dashboard

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// SnapshotQuery returns everything the dashboard shows for the namespace.
// Results are cached for the snapshot TTL and concurrent misses share one
// fetch. A failing metrics API degrades to a nil Metrics map.
//
// The shared fetch does not inherit the caller's cancellation; a caller that
// goes away only stops waiting.
func (s *Service) SnapshotQuery(ctx context.Context) (*Snapshot, error) {
	if cached, ok := s.cache.Get(cacheKeySnapshot); ok {
		if snapshot, ok := cached.(*Snapshot); ok {
			return snapshot, nil
		}
	}

	resultCh := s.group.DoChan(cacheKeySnapshot, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotFetchTimeout)
		defer cancel()

		return s.fetchSnapshot(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrListWorkloads, ctx.Err())
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}

		snapshot, _ := res.Val.(*Snapshot)

		return snapshot, nil
	}
}

func (s *Service) fetchSnapshot(ctx context.Context) (*Snapshot, error) {
	generation := s.generation.Load()

	workloads, err := s.repo.ListWorkloadsQuery(ctx, s.cfg.Namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListWorkloads, err)
	}

	snapshot := &Snapshot{
		Deployments:             List[workload.Deployment]{Items: nonNil(workloads.Deployments)},
		Daemonsets:              List[workload.Daemonset]{Items: nonNil(workloads.Daemonsets)},
		Pods:                    List[workload.Pod]{Items: nonNil(workloads.Pods)},
		ReplicaSets:             List[workload.ReplicaSet]{Items: nonNil(workloads.ReplicaSets)},
		ReplicaSetDeploymentMap: replicaSetDeploymentMap(workloads.ReplicaSets),
		Metrics:                 s.podMetrics(ctx, workloads.Pods),
		FetchedAt:               s.clock.Now(),
	}

	// A command finished while fetching; this snapshot may predate it.
	if s.generation.Load() == generation {
		s.store(cacheKeySnapshot, snapshot, s.cfg.SnapshotTTL)
	}

	return snapshot, nil
}

// podMetrics returns usage ratios keyed by pod name, or nil when the
// metrics API fails. Failures are not cached.
func (s *Service) podMetrics(ctx context.Context, pods []workload.Pod) map[string]workload.PodMetrics {
	if cached, ok := s.cache.Get(cacheKeyMetrics); ok {
		if metrics, ok := cached.(map[string]workload.PodMetrics); ok {
			return metrics
		}
	}

	v, err, _ := s.group.Do(cacheKeyMetrics, func() (any, error) {
		usage, err := s.repo.ListPodUsageQuery(ctx, s.cfg.Namespace)
		if err != nil {
			return nil, err
		}

		metrics := MergeUsage(pods, usage)
		s.store(cacheKeyMetrics, metrics, s.cfg.MetricsTTL)

		return metrics, nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "fetch pod metrics failed, serving without metrics",
			"namespace", s.cfg.Namespace,
			"reason", err,
		)

		return nil
	}

	metrics, _ := v.(map[string]workload.PodMetrics)

	return metrics
}

func (s *Service) store(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.cache.Set(key, value, ttl)
}

// invalidate drops the cached snapshot so the next read sees a command's
// effect. A fetch already in flight is detached and will not be cached.
func (s *Service) invalidate() {
	s.generation.Add(1)
	s.cache.Delete(cacheKeySnapshot)
	s.group.Forget(cacheKeySnapshot)
}

// MergeUsage turns raw usage into usage/limit ratios using the container
// limits of the matching pods. Containers without a limit for a resource get
// no ratio for it; pods and containers with no ratio at all are left out.
func MergeUsage(pods []workload.Pod, usage []PodUsage) map[string]workload.PodMetrics {
	podIndex := make(map[string]*workload.Pod, len(pods))
	for i := range pods {
		podIndex[pods[i].Metadata.Name] = &pods[i]
	}

	out := make(map[string]workload.PodMetrics, len(usage))

	for i := range usage {
		pod, ok := podIndex[usage[i].Name]
		if !ok {
			continue
		}

		podMetrics := make(workload.PodMetrics)

		for _, sample := range usage[i].Containers {
			limits, ok := containerLimits(pod, sample.Name)
			if !ok {
				continue
			}

			var containerUsage workload.ContainerUsage

			containerUsage.CPURatio = usageRatio(sample.CPU, limits, resourceCPU)
			containerUsage.MemRatio = usageRatio(sample.Memory, limits, resourceMemory)

			if containerUsage.CPURatio == nil && containerUsage.MemRatio == nil {
				continue
			}

			podMetrics[sample.Name] = containerUsage
		}

		if len(podMetrics) > 0 {
			out[usage[i].Name] = podMetrics
		}
	}

	return out
}

func containerLimits(pod *workload.Pod, name string) (map[string]resource.Quantity, bool) {
	for i := range pod.Spec.Containers {
		if pod.Spec.Containers[i].Name == name {
			return pod.Spec.Containers[i].Resources.Limits, true
		}
	}

	return nil, false
}

func usageRatio(used *resource.Quantity, limits map[string]resource.Quantity, name string) *float64 {
	if used == nil {
		return nil
	}

	limit, ok := limits[name]
	if !ok || limit.IsZero() {
		return nil
	}

	ratio := used.AsApproximateFloat64() / limit.AsApproximateFloat64()

	return &ratio
}

// replicaSetDeploymentMap maps replicaset uids to the uid of their owning
// deployment.
func replicaSetDeploymentMap(replicaSets []workload.ReplicaSet) map[string]string {
	out := make(map[string]string, len(replicaSets))

	for i := range replicaSets {
		for _, owner := range replicaSets[i].Metadata.OwnerReferences {
			if owner.Kind != ownerKindDeployment {
				continue
			}

			out[replicaSets[i].Metadata.UID] = owner.UID
		}
	}

	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
