package dashboard

import "errors"

var (
	ErrNotStoppedByOnOff = errors.New("wasn't stopped by onoff")
	ErrProtectedWorkload = errors.New("workload is managed by kubeonoff")
	ErrListWorkloads     = errors.New("list workloads")
	ErrGetDeployment     = errors.New("get deployment")
	ErrScaleDeployment   = errors.New("scale deployment")
	ErrRestartDeployment = errors.New("restart deployment")
	ErrDeletePod         = errors.New("delete pod")
	ErrPodLog            = errors.New("get pod log")
)

// IsNotFound reports whether err was caused by a missing object.
func IsNotFound(err error) bool {
	var target notFound

	return errors.As(err, &target)
}

// IsConflict reports whether err was caused by a concurrent modification.
func IsConflict(err error) bool {
	var target conflict

	return errors.As(err, &target)
}
