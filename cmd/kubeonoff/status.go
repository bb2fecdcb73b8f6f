package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubeonoff/kubeonoff/internal/app"
	"github.com/kubeonoff/kubeonoff/internal/config"
	"github.com/kubeonoff/kubeonoff/internal/infra/logging"
	"github.com/kubeonoff/kubeonoff/internal/logic/dashboard"
	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

var (
	stateOn      = color.New(color.FgGreen).SprintFunc()
	stateOff     = color.New(color.FgHiBlack).SprintFunc()
	statePending = color.New(color.FgYellow).SprintFunc()
	gaugeHigh    = color.New(color.FgRed).SprintFunc()
)

func newStatusCommand() *cobra.Command {
	var (
		search       string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the classified workloads of the namespace once",
		Args:  cobra.NoArgs,
		Example: `  # Show every deployment and daemonset
  kubeonoff status

  # Fuzzy filter by name and emit JSON
  kubeonoff status --search api -o json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := strings.ToLower(strings.TrimSpace(outputFormat))
			switch format {
			case "table", "json":
			default:
				return fmt.Errorf("unsupported output %q (expected table or json)", outputFormat)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Keep stdout clean for the table; logs go to stderr.
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)

			summary, err := app.Summarize(cmd.Context(), logger, cfg, search)
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(summary)
			}

			return renderSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Fuzzy filter on workload names")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table or json")

	return cmd
}

func renderSummary(out io.Writer, summary *dashboard.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "KIND\tNAME\tSTATE\tREPLICAS\tUPTIME\tCPU\tMEM")

	for _, d := range summary.Deployments {
		fmt.Fprintf(tw, "deployment\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Name,
			colorState(string(d.State)),
			d.Indicator,
			orDash(d.Uptime),
			formatRatio(d.Utilization.CPU, d.Utilization.CPUBand),
			formatRatio(d.Utilization.Mem, d.Utilization.MemBand),
		)
	}

	for _, ds := range summary.Daemonsets {
		fmt.Fprintf(tw, "daemonset\t%s\t%s\t%s\t%s\t%s\t%s\n",
			ds.Name,
			colorState(string(ds.State)),
			ds.Indicator,
			"-",
			formatRatio(ds.Utilization.CPU, ds.Utilization.CPUBand),
			formatRatio(ds.Utilization.Mem, ds.Utilization.MemBand),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	if !summary.MetricsAvailable {
		fmt.Fprintln(out, "resource metrics unavailable")
	}

	return nil
}

func colorState(state string) string {
	switch state {
	case string(workload.DeploymentOn):
		return stateOn(state)
	case string(workload.DeploymentOff):
		return stateOff(state)
	default:
		return statePending(state)
	}
}

func formatRatio(ratio *float64, band workload.GaugeBand) string {
	if ratio == nil {
		return "-"
	}

	text := fmt.Sprintf("%.0f%%", *ratio*100)
	switch band {
	case workload.GaugeHigh, workload.GaugeCritical:
		return gaugeHigh(text)
	default:
		return text
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
