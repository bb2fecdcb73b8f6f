package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNamespaceRequired = errors.New("namespace is required")
	ErrBelowMinimum      = errors.New("value below minimum")
	ErrInvalidExtension  = errors.New("invalid extension")
)

// Extension is a plugin backend reachable under /v1/kubeonoff/extensions/<name>/.
type Extension struct {
	Name    string
	BaseURL *url.URL
}

type Config struct {
	KubeConfig          string
	KubeMaster          string
	Namespace           string
	LogLevel            string
	LogFormat           string
	HTTPPort            string
	MetricsPort         string
	ProxyAuthUserHeader string
	StaticDir           string
	ScheduleTZ          string
	Extensions          []Extension
	LogTailLines        int64
	RefreshInterval     time.Duration
	SnapshotTTL         time.Duration
	MetricsTTL          time.Duration
	ProbeInterval       time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:          getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:          getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		Namespace:           getEnvWithFallback(envKeyNamespace, envKeyNamespaceFallback),
		LogLevel:            getEnvOrDefault(envKeyLogLevel, "info"),
		LogFormat:           getEnvOrDefault(envKeyLogFormat, "json"),
		HTTPPort:            getEnvOrDefault(envKeyHTTPPort, "8080"),
		MetricsPort:         getEnvOrDefault(envKeyMetricsPort, "9090"),
		ProxyAuthUserHeader: os.Getenv(envKeyProxyAuthUserHeader),
		StaticDir:           os.Getenv(envKeyStaticDir),
		ScheduleTZ:          os.Getenv(envKeyScheduleTZ),
	}

	if cfg.Namespace == "" {
		return nil, fmt.Errorf("%w: set %s or %s", ErrNamespaceRequired, envKeyNamespace, envKeyNamespaceFallback)
	}

	if cfg.ScheduleTZ != "" {
		if _, err := time.LoadLocation(cfg.ScheduleTZ); err != nil {
			return nil, fmt.Errorf("parse %s: %w", envKeyScheduleTZ, err)
		}
	}

	var err error

	cfg.RefreshInterval, err = parseDuration(envKeyRefreshInterval, defaultRefreshInterval, envMinRefreshInterval)
	if err != nil {
		return nil, err
	}

	cfg.SnapshotTTL, err = parseDuration(envKeySnapshotTTL, defaultSnapshotTTL, envMinSnapshotTTL)
	if err != nil {
		return nil, err
	}

	cfg.MetricsTTL, err = parseDuration(envKeyMetricsTTL, defaultMetricsTTL, envMinMetricsTTL)
	if err != nil {
		return nil, err
	}

	cfg.ProbeInterval, err = parseDuration(envKeyProbeInterval, defaultProbeInterval, envMinProbeInterval)
	if err != nil {
		return nil, err
	}

	cfg.LogTailLines, err = parseInt(envKeyLogTailLines, defaultLogTailLines, envMinLogTailLines)
	if err != nil {
		return nil, err
	}

	cfg.Extensions, err = ParseExtensions(os.Getenv(envKeyExtensions))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envKeyExtensions, err)
	}

	return cfg, nil
}

// ParseExtensions parses "name=url,name2=url2". Empty entries are ignored.
func ParseExtensions(raw string) ([]Extension, error) {
	var out []Extension

	seen := make(map[string]struct{})

	for entry := range strings.SplitSeq(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, rawURL, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)

		if !ok || name == "" || strings.Contains(name, "/") {
			return nil, fmt.Errorf("%w: %q must look like name=url", ErrInvalidExtension, entry)
		}

		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidExtension, name)
		}

		u, err := url.Parse(strings.TrimSpace(rawURL))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: %q has no absolute url", ErrInvalidExtension, name)
		}

		seen[name] = struct{}{}
		out = append(out, Extension{Name: name, BaseURL: u})
	}

	return out, nil
}

func parseDuration(key, defaultValue string, minimum time.Duration) (time.Duration, error) {
	value, err := time.ParseDuration(getEnvOrDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minimum {
		return 0, fmt.Errorf("parse %s: %w: %s < %s", key, ErrBelowMinimum, value, minimum)
	}

	return value, nil
}

func parseInt(key string, defaultValue, minimum int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minimum {
		return 0, fmt.Errorf("parse %s: %w: %d < %d", key, ErrBelowMinimum, value, minimum)
	}

	return value, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return os.Getenv(fallbackKey)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
