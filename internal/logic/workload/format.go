package workload

import (
	"strconv"
	"time"
)

const day = 24 * time.Hour

// UptimeClass buckets an uptime for colouring: very young pods are a sign of
// crash loops.
type UptimeClass string

const (
	UptimeNone    UptimeClass = ""
	UptimeDanger  UptimeClass = "danger"
	UptimeWarning UptimeClass = "warning"
	UptimeOkay    UptimeClass = "okay"
)

// FormatDuration renders d in the largest unit that fits, truncated:
// 500ms, 59s, 1m, 23h, 3d.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	case d < time.Minute:
		return strconv.FormatInt(int64(d/time.Second), 10) + "s"
	case d < time.Hour:
		return strconv.FormatInt(int64(d/time.Minute), 10) + "m"
	case d < day:
		return strconv.FormatInt(int64(d/time.Hour), 10) + "h"
	default:
		return strconv.FormatInt(int64(d/day), 10) + "d"
	}
}

// UptimeClassFor returns UptimeNone for a zero uptime, which callers hide.
func UptimeClassFor(d time.Duration) UptimeClass {
	switch {
	case d <= 0:
		return UptimeNone
	case d < time.Minute:
		return UptimeDanger
	case d < 5*time.Minute:
		return UptimeWarning
	default:
		return UptimeOkay
	}
}
