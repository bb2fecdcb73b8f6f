package dashboard

import (
	"context"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// SummaryQuery classifies the current snapshot. A non-empty search keeps only
// workloads whose name fuzzily matches it, best match first.
func (s *Service) SummaryQuery(ctx context.Context, search string) (*Summary, error) {
	snapshot, err := s.SnapshotQuery(ctx)
	if err != nil {
		return nil, err
	}

	return buildSummary(snapshot, search, s.clock.Now()), nil
}

func buildSummary(snapshot *Snapshot, search string, now time.Time) *Summary {
	pods := attachMetrics(snapshot.Pods.Items, snapshot.Metrics)
	byDeployment, byDaemonset := groupPods(pods, snapshot.ReplicaSetDeploymentMap)

	summary := &Summary{
		Deployments:      make([]DeploymentSummary, 0, len(snapshot.Deployments.Items)),
		Daemonsets:       make([]DaemonsetSummary, 0, len(snapshot.Daemonsets.Items)),
		MetricsAvailable: snapshot.Metrics != nil,
		GeneratedAt:      now,
	}

	for _, i := range filterByName(snapshot.Deployments.Items, deploymentName, search) {
		d := snapshot.Deployments.Items[i]
		summary.Deployments = append(summary.Deployments,
			summarizeDeployment(d, byDeployment[d.Metadata.UID], now))
	}

	for _, i := range filterByName(snapshot.Daemonsets.Items, daemonsetName, search) {
		ds := snapshot.Daemonsets.Items[i]
		summary.Daemonsets = append(summary.Daemonsets,
			summarizeDaemonset(ds, byDaemonset[ds.Metadata.UID], now))
	}

	return summary
}

func summarizeDeployment(d workload.Deployment, pods []workload.Pod, now time.Time) DeploymentSummary {
	out := DeploymentSummary{
		Name:        d.Metadata.Name,
		UID:         d.Metadata.UID,
		State:       workload.ClassifyDeploymentState(d),
		Indicator:   workload.DeploymentIndicator(d),
		Desired:     d.Spec.DesiredReplicas(),
		Available:   d.Status.AvailableReplicas,
		Description: workload.Description(d),
		Important:   workload.IsImportant(d),
		Protected:   workload.IsProtected(d.Metadata.Name),
		OffAt:       parseOffAt(d),
		Utilization: summarizeUtilization(pods),
		Pods:        summarizePods(pods, now),
	}

	if uptime, ok := deploymentUptime(pods, now); ok {
		out.Uptime = uptimeText(uptime)
		out.UptimeClass = workload.UptimeClassFor(uptime)
	}

	return out
}

func summarizeDaemonset(ds workload.Daemonset, pods []workload.Pod, now time.Time) DaemonsetSummary {
	return DaemonsetSummary{
		Name:        ds.Metadata.Name,
		UID:         ds.Metadata.UID,
		State:       workload.ClassifyDaemonsetState(ds),
		Indicator:   workload.DaemonsetIndicator(ds),
		Desired:     ds.Status.DesiredNumberScheduled,
		Available:   ds.Status.NumberAvailable,
		Utilization: summarizeUtilization(pods),
		Pods:        summarizePods(pods, now),
	}
}

func summarizePods(pods []workload.Pod, now time.Time) []PodSummary {
	out := make([]PodSummary, 0, len(pods))

	for i := range pods {
		p := pods[i]
		uptime := workload.MinimumUptime(p, now)

		containers := make([]string, 0, len(p.Spec.Containers))
		for _, c := range p.Spec.Containers {
			containers = append(containers, c.Name)
		}

		out = append(out, PodSummary{
			Name:        p.Metadata.Name,
			NodeName:    p.Spec.NodeName,
			Status:      workload.DisplayStatus(p),
			Readiness:   workload.ComputeReadiness(p),
			Restarts:    workload.CountRestarts(p),
			Uptime:      uptimeText(uptime),
			UptimeClass: workload.UptimeClassFor(uptime),
			Important:   workload.IsImportantPod(p),
			Containers:  containers,
			Metrics:     p.Metrics,
		})
	}

	return out
}

func summarizeUtilization(pods []workload.Pod) UtilizationSummary {
	u := workload.AggregateMaxUtilization(pods)

	return UtilizationSummary{
		CPU:     u.CPU,
		Mem:     u.Mem,
		CPUBand: workload.GaugeBandFor(u.CPU),
		MemBand: workload.GaugeBandFor(u.Mem),
	}
}

// deploymentUptime is the youngest pod uptime. Pods without running
// containers count as zero, which hides the badge.
func deploymentUptime(pods []workload.Pod, now time.Time) (time.Duration, bool) {
	if len(pods) == 0 {
		return 0, false
	}

	uptime := workload.MinimumUptime(pods[0], now)
	for i := 1; i < len(pods); i++ {
		uptime = min(uptime, workload.MinimumUptime(pods[i], now))
	}

	return uptime, true
}

// uptimeText hides a zero uptime.
func uptimeText(d time.Duration) string {
	if d == 0 {
		return ""
	}

	return workload.FormatDuration(d)
}

func parseOffAt(d workload.Deployment) *time.Time {
	raw := d.Metadata.Annotations[workload.AnnotationOffAt]
	if raw == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}

	return &t
}

// attachMetrics returns copies of pods carrying their usage ratios.
func attachMetrics(pods []workload.Pod, metrics map[string]workload.PodMetrics) []workload.Pod {
	out := make([]workload.Pod, len(pods))
	copy(out, pods)

	for i := range out {
		out[i].Metrics = metrics[out[i].Metadata.Name]
	}

	return out
}

// groupPods indexes pods by the uid of their deployment (through the owning
// replicaset) and of their daemonset.
func groupPods(
	pods []workload.Pod,
	rsToDeployment map[string]string,
) (map[string][]workload.Pod, map[string][]workload.Pod) {
	byDeployment := make(map[string][]workload.Pod)
	byDaemonset := make(map[string][]workload.Pod)

	for i := range pods {
		for _, owner := range pods[i].Metadata.OwnerReferences {
			switch owner.Kind {
			case ownerKindReplicaSet:
				if deploymentUID, ok := rsToDeployment[owner.UID]; ok {
					byDeployment[deploymentUID] = append(byDeployment[deploymentUID], pods[i])
				}
			case ownerKindDaemonSet:
				byDaemonset[owner.UID] = append(byDaemonset[owner.UID], pods[i])
			}
		}
	}

	return byDeployment, byDaemonset
}

func deploymentName(d workload.Deployment) string { return d.Metadata.Name }

func daemonsetName(ds workload.Daemonset) string { return ds.Metadata.Name }

// filterByName returns the indexes of items to show. An empty search keeps
// every item in its original order.
func filterByName[T any](items []T, name func(T) string, search string) []int {
	if search == "" {
		out := make([]int, len(items))
		for i := range items {
			out[i] = i
		}

		return out
	}

	names := make([]string, len(items))
	for i := range items {
		names[i] = name(items[i])
	}

	matches := fuzzy.Find(search, names)

	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}

	return out
}
