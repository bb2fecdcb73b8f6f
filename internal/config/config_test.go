package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kubeonoff/kubeonoff/internal/config"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr error
	// wantAnyErr is set when the error comes from a parser without a sentinel.
	wantAnyErr bool
	wantCfg    *config.Config
}

func assertConfigFields(t *testing.T, got, want *config.Config) {
	t.Helper()

	if want == nil {
		return
	}

	if want.Namespace != "" {
		require.Equal(t, want.Namespace, got.Namespace)
	}

	if want.HTTPPort != "" {
		require.Equal(t, want.HTTPPort, got.HTTPPort)
	}

	if want.MetricsPort != "" {
		require.Equal(t, want.MetricsPort, got.MetricsPort)
	}

	if want.LogLevel != "" {
		require.Equal(t, want.LogLevel, got.LogLevel)
	}

	if want.LogFormat != "" {
		require.Equal(t, want.LogFormat, got.LogFormat)
	}

	if want.KubeConfig != "" {
		require.Equal(t, want.KubeConfig, got.KubeConfig)
	}

	if want.RefreshInterval != 0 {
		require.Equal(t, want.RefreshInterval, got.RefreshInterval)
	}

	if want.SnapshotTTL != 0 {
		require.Equal(t, want.SnapshotTTL, got.SnapshotTTL)
	}

	if want.MetricsTTL != 0 {
		require.Equal(t, want.MetricsTTL, got.MetricsTTL)
	}

	if want.ProbeInterval != 0 {
		require.Equal(t, want.ProbeInterval, got.ProbeInterval)
	}

	if want.LogTailLines != 0 {
		require.Equal(t, want.LogTailLines, got.LogTailLines)
	}

	if want.ScheduleTZ != "" {
		require.Equal(t, want.ScheduleTZ, got.ScheduleTZ)
	}

	if want.ProxyAuthUserHeader != "" {
		require.Equal(t, want.ProxyAuthUserHeader, got.ProxyAuthUserHeader)
	}
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name: "all defaults",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE": "dev",
			},
			wantCfg: &config.Config{
				Namespace:       "dev",
				LogLevel:        "info",
				LogFormat:       "json",
				HTTPPort:        "8080",
				MetricsPort:     "9090",
				RefreshInterval: 5 * time.Second,
				SnapshotTTL:     2 * time.Second,
				MetricsTTL:      60 * time.Second,
				ProbeInterval:   10 * time.Second,
				LogTailLines:    1000,
			},
		},
		{
			name: "namespace from downward api fallback",
			giveEnv: map[string]string{
				"POD_NAMESPACE": "staging",
			},
			wantCfg: &config.Config{Namespace: "staging"},
		},
		{
			name: "prefixed kubeconfig wins over fallback",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":  "dev",
				"KUBEONOFF_KUBECONFIG": "/etc/kubeonoff/kubeconfig",
				"KUBECONFIG":           "/home/me/.kube/config",
			},
			wantCfg: &config.Config{KubeConfig: "/etc/kubeonoff/kubeconfig"},
		},
		{
			name:    "missing namespace",
			giveEnv: map[string]string{},
			wantErr: config.ErrNamespaceRequired,
		},
		{
			name: "overrides",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":              "dev",
				"KUBEONOFF_HTTP_PORT":              "80",
				"KUBEONOFF_REFRESH_INTERVAL":       "1m",
				"KUBEONOFF_SNAPSHOT_TTL":           "0s",
				"KUBEONOFF_LOG_TAIL_LINES":         "200",
				"KUBEONOFF_PROXY_AUTH_USER_HEADER": "X-Forwarded-User",
				"KUBEONOFF_SCHEDULE_TZ":            "Europe/Berlin",
			},
			wantCfg: &config.Config{
				ScheduleTZ:          "Europe/Berlin",
				HTTPPort:            "80",
				RefreshInterval:     time.Minute,
				LogTailLines:        200,
				ProxyAuthUserHeader: "X-Forwarded-User",
			},
		},
		{
			name: "refresh interval below minimum",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":        "dev",
				"KUBEONOFF_REFRESH_INTERVAL": "100ms",
			},
			wantErr: config.ErrBelowMinimum,
		},
		{
			name: "invalid metrics ttl",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":   "dev",
				"KUBEONOFF_METRICS_TTL": "soon",
			},
			wantAnyErr: true,
		},
		{
			name: "zero tail lines",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":      "dev",
				"KUBEONOFF_LOG_TAIL_LINES": "0",
			},
			wantErr: config.ErrBelowMinimum,
		},
		{
			name: "unknown schedule zone",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":   "dev",
				"KUBEONOFF_SCHEDULE_TZ": "Mars/Olympus",
			},
			wantAnyErr: true,
		},
		{
			name: "malformed extension",
			giveEnv: map[string]string{
				"KUBEONOFF_NAMESPACE":  "dev",
				"KUBEONOFF_EXTENSIONS": "scaler",
			},
			wantErr: config.ErrInvalidExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"KUBEONOFF_NAMESPACE", "POD_NAMESPACE", "KUBECONFIG", "KUBEONOFF_KUBECONFIG"} {
				t.Setenv(key, "")
			}

			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()

			if tt.wantAnyErr {
				require.Error(t, err)

				return
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assertConfigFields(t, got, tt.wantCfg)
		})
	}
}

func TestParseExtensions(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got, err := config.ParseExtensions("")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("two extensions", func(t *testing.T) {
		t.Parallel()

		got, err := config.ParseExtensions("scaler=http://scaler:8080, flags=https://flags.internal/api")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "scaler", got[0].Name)
		require.Equal(t, "scaler:8080", got[0].BaseURL.Host)
		require.Equal(t, "flags", got[1].Name)
		require.Equal(t, "/api", got[1].BaseURL.Path)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		_, err := config.ParseExtensions("a=http://x,a=http://y")
		require.ErrorIs(t, err, config.ErrInvalidExtension)
	})

	t.Run("relative url", func(t *testing.T) {
		t.Parallel()

		_, err := config.ParseExtensions("a=/local")
		require.ErrorIs(t, err, config.ErrInvalidExtension)
	})
}
