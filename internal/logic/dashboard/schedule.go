package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// runScheduledStops turns off deployments whose off-schedule annotation is
// due. The next stop time is kept in the off-at annotation so a restart of
// the dashboard neither skips nor repeats a stop.
func (s *Service) runScheduledStops(ctx context.Context, snapshot *Snapshot) {
	logger := s.logger.With("component", "dashboard", "loop", "scheduledStops")
	now := s.clock.Now()

	for i := range snapshot.Deployments.Items {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping scheduled stops")

			return
		default:
		}

		d := snapshot.Deployments.Items[i]

		spec := d.Metadata.Annotations[workload.AnnotationOffSchedule]
		if spec == "" || workload.IsProtected(d.Metadata.Name) {
			continue
		}

		err := s.processScheduledStop(ctx, logger.With("deployment", d.Metadata.Name), d, spec, now)
		if err != nil {
			logger.ErrorContext(ctx, "scheduled stop error",
				"deployment", d.Metadata.Name,
				"schedule", spec,
				"reason", err,
			)
		}
	}
}

func (s *Service) processScheduledStop(
	ctx context.Context,
	logger *slog.Logger,
	d workload.Deployment,
	spec string,
	now time.Time,
) error {
	tz := d.Metadata.Annotations[workload.AnnotationOffScheduleTZ]

	offAt := parseOffAt(d)
	if offAt == nil || d.Metadata.Annotations[workload.AnnotationOffAtSource] != offAtSource(spec, tz) {
		return s.writeNextOffAt(ctx, logger, d.Metadata.Name, spec, tz, now)
	}

	if now.Before(*offAt) {
		return nil
	}

	if workload.ClassifyDeploymentState(d) != workload.DeploymentOff {
		_, err := s.setReplicas(ctx, &d, 0)
		s.recordAction(actionScheduledOff, err)

		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "deployment turned off by schedule", "offAt", offAt.Format(time.RFC3339))
	}

	return s.writeNextOffAt(ctx, logger, d.Metadata.Name, spec, tz, now)
}

func (s *Service) writeNextOffAt(
	ctx context.Context,
	logger *slog.Logger,
	name,
	spec,
	tz string,
	now time.Time,
) error {
	next, err := s.scheduler.NextAfter(spec, tz, now)
	if err != nil {
		return fmt.Errorf("next scheduled stop: %w", err)
	}

	value := next.UTC().Format(time.RFC3339)

	err = s.repo.PatchDeploymentAnnotationsCommand(ctx, s.cfg.Namespace, name, map[string]string{
		workload.AnnotationOffAt:       value,
		workload.AnnotationOffAtSource: offAtSource(spec, tz),
	})
	if err != nil {
		return fmt.Errorf("patch off-at annotation: %w", err)
	}

	s.invalidate()

	logger.DebugContext(ctx, "next scheduled stop", "offAt", value)

	return nil
}

// offAtSource renders spec and tz the way robfig/cron spells a zoned schedule.
func offAtSource(spec, tz string) string {
	if tz == "" {
		return spec
	}

	return "CRON_TZ=" + tz + " " + spec
}
