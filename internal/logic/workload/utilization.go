package workload

// Utilization is the highest usage/limit ratio seen across a set of pods.
// Nil means no pod reported that resource.
type Utilization struct {
	CPU *float64 `json:"cpu"`
	Mem *float64 `json:"mem"`
}

// GaugeBand is the colour band of a utilisation gauge.
type GaugeBand string

const (
	GaugeNone     GaugeBand = ""
	GaugeMinimal  GaugeBand = "minimal"
	GaugeLow      GaugeBand = "low"
	GaugeMedium   GaugeBand = "medium"
	GaugeHigh     GaugeBand = "high"
	GaugeCritical GaugeBand = "critical"
)

// AggregateMaxUtilization takes the maximum cpu and memory ratio over every
// container of every pod. Pods without metrics are skipped.
func AggregateMaxUtilization(pods []Pod) Utilization {
	var out Utilization

	for i := range pods {
		for _, usage := range pods[i].Metrics {
			out.CPU = maxRatio(out.CPU, usage.CPURatio)
			out.Mem = maxRatio(out.Mem, usage.MemRatio)
		}
	}

	return out
}

func maxRatio(current, candidate *float64) *float64 {
	if candidate == nil {
		return current
	}

	if current == nil || *candidate > *current {
		v := *candidate

		return &v
	}

	return current
}

// GaugeBandFor maps a ratio onto the gauge bands. A nil ratio has no gauge.
func GaugeBandFor(ratio *float64) GaugeBand {
	if ratio == nil {
		return GaugeNone
	}

	switch r := *ratio; {
	case r >= 0.9:
		return GaugeCritical
	case r >= 0.7:
		return GaugeHigh
	case r >= 0.5:
		return GaugeMedium
	case r >= 0.2:
		return GaugeLow
	default:
		return GaugeMinimal
	}
}
