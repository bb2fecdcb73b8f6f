package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubeonoff/kubeonoff/internal/app"
	"github.com/kubeonoff/kubeonoff/internal/config"
	"github.com/kubeonoff/kubeonoff/internal/infra/logging"
	"github.com/kubeonoff/kubeonoff/internal/infra/shutdown"
)

func main() {
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	if err := newRootCommand(signals).ExecuteContext(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to run", "reason", err)
		// Give the logger some time to flush
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}
}

func newRootCommand(signals <-chan os.Signal) *cobra.Command {
	serve := newServeCommand(signals)

	root := &cobra.Command{
		Use:           "kubeonoff",
		Short:         "Namespace dashboard that turns deployments off and on",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newStatusCommand())

	return root
}

func newServeCommand(signals <-chan os.Signal) *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Serve the dashboard API (default)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := logging.New(cfg.LogFormat, cfg.LogLevel)

			application, err := app.New(logger, cfg, signals)
			if err != nil {
				return fmt.Errorf("new application: %w", err)
			}

			if err := application.Run(ctx); err != nil {
				return err
			}

			logger.InfoContext(ctx, "bye")

			return nil
		},
	}
}
