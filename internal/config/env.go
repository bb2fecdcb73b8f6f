package config

import "time"

// Env key constants. Every setting uses the KUBEONOFF_ prefix; duration values
// accept explicit units (e.g. 5s, 1m, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback; if both
// are unset the in-cluster service account is used.
const envKeyKubeConfig = "KUBEONOFF_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "KUBEONOFF_KUBE_MASTER"

// Namespace whose workloads are shown. Falls back to POD_NAMESPACE (downward API).
const envKeyNamespace = "KUBEONOFF_NAMESPACE"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "KUBEONOFF_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "KUBEONOFF_LOG_FORMAT"

// Port for the dashboard API and health endpoints.
const envKeyHTTPPort = "KUBEONOFF_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "KUBEONOFF_METRICS_PORT"

// Header set by the authenticating proxy in front of the dashboard; its value
// is recorded as the acting user.
const envKeyProxyAuthUserHeader = "KUBEONOFF_PROXY_AUTH_USER_HEADER"

// Extensions as comma separated name=baseURL pairs.
const envKeyExtensions = "KUBEONOFF_EXTENSIONS"

// Directory with the built frontend; empty disables static serving.
const envKeyStaticDir = "KUBEONOFF_STATIC_DIR"

// Time zone for off-schedule annotations that carry none; empty means UTC.
const envKeyScheduleTZ = "KUBEONOFF_SCHEDULE_TZ"

// Number of log lines returned by the pod log endpoint.
const (
	envKeyLogTailLines  = "KUBEONOFF_LOG_TAIL_LINES"
	defaultLogTailLines = 1000
	envMinLogTailLines  = 1
)

// Background refresh interval (metrics export, scheduled stops).
const (
	envKeyRefreshInterval  = "KUBEONOFF_REFRESH_INTERVAL"
	envMinRefreshInterval  = time.Second
	defaultRefreshInterval = "5s"
)

// How long a fetched workload snapshot is served from cache.
const (
	envKeySnapshotTTL  = "KUBEONOFF_SNAPSHOT_TTL"
	envMinSnapshotTTL  = 0
	defaultSnapshotTTL = "2s"
)

// How long resource metrics are cached; metrics-server refreshes about once a minute.
const (
	envKeyMetricsTTL  = "KUBEONOFF_METRICS_TTL"
	envMinMetricsTTL  = time.Second
	defaultMetricsTTL = "60s"
)

// Component health probe interval.
const (
	envKeyProbeInterval  = "KUBEONOFF_PROBE_INTERVAL"
	envMinProbeInterval  = time.Second
	defaultProbeInterval = "10s"
)

// Standard env keys used as fallback when KUBEONOFF_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
	envKeyNamespaceFallback  = "POD_NAMESPACE"
)
