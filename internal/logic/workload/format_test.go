package workload_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give time.Duration
		want string
	}{
		{give: 0, want: "0ms"},
		{give: 500 * time.Millisecond, want: "500ms"},
		{give: 999 * time.Millisecond, want: "999ms"},
		{give: time.Second, want: "1s"},
		{give: 59999 * time.Millisecond, want: "59s"},
		{give: 90 * time.Second, want: "1m"},
		{give: 59 * time.Minute, want: "59m"},
		{give: 90 * time.Minute, want: "1h"},
		{give: 23*time.Hour + 59*time.Minute, want: "23h"},
		{give: 90000 * time.Second, want: "1d"},
		{give: 90000000 * time.Millisecond, want: "1d"},
		{give: 10 * 24 * time.Hour, want: "10d"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, workload.FormatDuration(tt.give))
		})
	}
}

func TestUptimeClassFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, workload.UptimeNone, workload.UptimeClassFor(0))
	require.Equal(t, workload.UptimeDanger, workload.UptimeClassFor(30*time.Second))
	require.Equal(t, workload.UptimeWarning, workload.UptimeClassFor(4*time.Minute))
	require.Equal(t, workload.UptimeOkay, workload.UptimeClassFor(5*time.Minute))
}
