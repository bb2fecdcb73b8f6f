package workload

import (
	"strconv"
	"strings"
	"time"
)

// Readiness is tri-state: a pod that has not reported container statuses is
// neither ready nor unready.
type Readiness string

const (
	ReadinessUnknown  Readiness = "unknown"
	ReadinessReady    Readiness = "ready"
	ReadinessNotReady Readiness = "not-ready"
)

// DerivePodStatusReason follows the kubectl printer precedence: phase, then
// pod reason, then container waiting/terminated reasons walked last to first,
// then deletion. Init containers are ignored.
func DerivePodStatusReason(p Pod) string {
	reason := p.Status.Phase
	if p.Status.Reason != "" {
		reason = p.Status.Reason
	}

	statuses := p.Status.ContainerStatuses
	for i := len(statuses) - 1; i >= 0; i-- {
		if r, ok := containerReason(statuses[i].State); ok {
			reason = r
		}
	}

	if p.Metadata.DeletionTimestamp != nil {
		if strings.EqualFold(p.Status.Reason, reasonNodeLost) {
			return reasonUnknown
		}

		return reasonTerminating
	}

	return reason
}

func containerReason(state ContainerState) (string, bool) {
	switch {
	case state.Waiting != nil && state.Waiting.Reason != "":
		return state.Waiting.Reason, true
	case state.Terminated != nil && state.Terminated.Reason != "":
		return state.Terminated.Reason, true
	case state.Terminated != nil:
		t := state.Terminated
		if t.Signal != nil && *t.Signal != 0 {
			return "Signal: " + strconv.Itoa(int(*t.Signal)), true
		}

		if t.ExitCode != nil {
			return "ExitCode: " + strconv.Itoa(int(*t.ExitCode)), true
		}

		return "ExitCode: <unknown>", true
	}

	return "", false
}

// ComputeReadiness is ready when every reported container is ready.
func ComputeReadiness(p Pod) Readiness {
	statuses := p.Status.ContainerStatuses
	if statuses == nil {
		return ReadinessUnknown
	}

	if len(statuses) == 0 {
		return ReadinessNotReady
	}

	for i := range statuses {
		if !statuses[i].Ready {
			return ReadinessNotReady
		}
	}

	return ReadinessReady
}

// DisplayStatus is DerivePodStatusReason with Running downgraded to NotReady
// when some container is known to be unready.
func DisplayStatus(p Pod) string {
	reason := DerivePodStatusReason(p)
	if reason == phaseRunning && ComputeReadiness(p) == ReadinessNotReady {
		return reasonNotReady
	}

	return reason
}

// CountRestarts sums restart counts over all containers.
func CountRestarts(p Pod) int {
	total := 0
	for i := range p.Status.ContainerStatuses {
		total += p.Status.ContainerStatuses[i].RestartCount
	}

	return total
}

// MinimumUptime returns the uptime of the most recently started running
// container. Zero means either nothing is running or it started just now.
func MinimumUptime(p Pod, now time.Time) time.Duration {
	var (
		minimum time.Duration
		found   bool
	)

	for i := range p.Status.ContainerStatuses {
		running := p.Status.ContainerStatuses[i].State.Running
		if running == nil || running.StartedAt == nil {
			continue
		}

		uptime := now.Sub(*running.StartedAt).Truncate(time.Millisecond)
		if !found || uptime < minimum {
			minimum = uptime
			found = true
		}
	}

	if minimum < 0 {
		return 0
	}

	return minimum
}
