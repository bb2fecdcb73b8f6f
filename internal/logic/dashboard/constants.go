package dashboard

import "time"

// snapshotFetchTimeout bounds a shared snapshot fetch, which outlives the
// request that started it.
const snapshotFetchTimeout = 30 * time.Second

const (
	cacheKeySnapshot = "snapshot"
	cacheKeyMetrics  = "metrics"

	ownerKindReplicaSet = "ReplicaSet"
	ownerKindDeployment = "Deployment"
	ownerKindDaemonSet  = "DaemonSet"

	resourceCPU    = "cpu"
	resourceMemory = "memory"

	kindDeployment = "deployment"
	kindDaemonset  = "daemonset"

	actionOff          = "off"
	actionOn           = "on"
	actionRestart      = "restart"
	actionDeletePod    = "delete-pod"
	actionScheduledOff = "scheduled-off"

	outcomeSuccess = "success"
	outcomeError   = "error"

	// deleteAllConcurrency bounds parallel pod deletions.
	deleteAllConcurrency = 4
)
