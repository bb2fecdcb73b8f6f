package workload

const (
	AnnotationImportant        = "kubeonoff/important"
	AnnotationDescription      = "kubeonoff/description"
	AnnotationOriginalReplicas = "kubeonoff/original-replicas"
	AnnotationOffSchedule      = "kubeonoff/off-schedule"
	AnnotationOffScheduleTZ    = "kubeonoff/tz"
	AnnotationOffAt            = "kubeonoff/off-at"
	// AnnotationOffAtSource holds the schedule that produced AnnotationOffAt.
	AnnotationOffAtSource = "kubeonoff/off-at-source"

	LabelImportantPod         = "kubeonoff-important"
	LabelRollingRestartSerial = "kubeonoff/rolling-restart-serial"

	// protectedNameMarker marks the dashboard's own workloads.
	protectedNameMarker = "kubeonoff"

	phaseRunning      = "Running"
	reasonNotReady    = "NotReady"
	reasonUnknown     = "Unknown"
	reasonTerminating = "Terminating"
	reasonNodeLost    = "nodelost"
)
