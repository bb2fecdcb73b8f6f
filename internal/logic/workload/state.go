package workload

import (
	"strconv"
	"strings"
)

// DeploymentState is the health of a deployment as shown on its card.
type DeploymentState string

const (
	DeploymentOff     DeploymentState = "off"
	DeploymentOn      DeploymentState = "on"
	DeploymentPending DeploymentState = "pending"
)

// DaemonsetState is the health of a daemonset. Daemonsets have no replica
// count to zero out, so there is no off state.
type DaemonsetState string

const (
	DaemonsetOn      DaemonsetState = "on"
	DaemonsetPending DaemonsetState = "pending"
)

// ClassifyDeploymentState reports off for zero desired replicas, on when every
// desired replica is available and pending otherwise.
func ClassifyDeploymentState(d Deployment) DeploymentState {
	replicas := d.Spec.DesiredReplicas()

	switch {
	case replicas == 0:
		return DeploymentOff
	case d.Status.AvailableReplicas == replicas:
		return DeploymentOn
	default:
		return DeploymentPending
	}
}

// ClassifyDaemonsetState reports on when the available count matches the
// desired count, including the empty 0/0 case.
func ClassifyDaemonsetState(ds Daemonset) DaemonsetState {
	if ds.Status.DesiredNumberScheduled == ds.Status.NumberAvailable {
		return DaemonsetOn
	}

	return DaemonsetPending
}

// DeploymentIndicator is the replica badge: the replica count when it matches
// the desired count, "<ready+unavailable>/<desired>" otherwise.
func DeploymentIndicator(d Deployment) string {
	desired := d.Spec.DesiredReplicas()
	if d.Status.Replicas == desired {
		return strconv.Itoa(int(desired))
	}

	current := d.Status.ReadyReplicas + d.Status.UnavailableReplicas

	return strconv.Itoa(int(current)) + "/" + strconv.Itoa(int(desired))
}

// DaemonsetIndicator is the daemonset counterpart of DeploymentIndicator.
func DaemonsetIndicator(ds Daemonset) string {
	desired := ds.Status.DesiredNumberScheduled
	if desired == ds.Status.NumberAvailable {
		return strconv.Itoa(int(desired))
	}

	return strconv.Itoa(int(ds.Status.NumberAvailable)) + "/" + strconv.Itoa(int(desired))
}

// IsImportant reports whether a deployment carries the important annotation.
// The UI asks for confirmation before altering such deployments.
func IsImportant(d Deployment) bool {
	return d.Metadata.Annotations[AnnotationImportant] != ""
}

// IsImportantPod reports whether a pod carries the important label.
func IsImportantPod(p Pod) bool {
	return p.Metadata.Labels[LabelImportantPod] != ""
}

// Description returns the free-text description annotation, if any.
func Description(d Deployment) string {
	return d.Metadata.Annotations[AnnotationDescription]
}

// IsProtected reports whether a workload belongs to the dashboard itself and
// must not be stopped, restarted or bulk-deleted from it.
func IsProtected(name string) bool {
	return strings.Contains(name, protectedNameMarker)
}
