package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/kubeonoff/kubeonoff/internal/logic/workload"
)

// TurnOffCommand scales a deployment to zero, remembering its replica count
// in the original-replicas annotation unless one is already recorded.
func (s *Service) TurnOffCommand(ctx context.Context, name string) (*workload.Deployment, error) {
	logger := s.logger.With("deployment", name, "action", actionOff)

	if workload.IsProtected(name) {
		return nil, fmt.Errorf("turn off %q: %w", name, ErrProtectedWorkload)
	}

	d, err := s.repo.GetDeploymentQuery(ctx, s.cfg.Namespace, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetDeployment, err)
	}

	out, err := s.setReplicas(ctx, d, 0)
	s.recordAction(actionOff, err)

	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "deployment turned off",
		"originalReplicas", out.Metadata.Annotations[workload.AnnotationOriginalReplicas],
	)

	return out, nil
}

// TurnOnCommand restores the replica count recorded by TurnOffCommand.
func (s *Service) TurnOnCommand(ctx context.Context, name string) (*workload.Deployment, error) {
	logger := s.logger.With("deployment", name, "action", actionOn)

	if workload.IsProtected(name) {
		return nil, fmt.Errorf("turn on %q: %w", name, ErrProtectedWorkload)
	}

	d, err := s.repo.GetDeploymentQuery(ctx, s.cfg.Namespace, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetDeployment, err)
	}

	raw, ok := d.Metadata.Annotations[workload.AnnotationOriginalReplicas]
	if !ok {
		return nil, fmt.Errorf("deployment %q %w: annotation %s not set",
			name, ErrNotStoppedByOnOff, workload.AnnotationOriginalReplicas)
	}

	replicas, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || replicas < 0 {
		return nil, fmt.Errorf("deployment %q %w: annotation %s=%q is not a replica count",
			name, ErrNotStoppedByOnOff, workload.AnnotationOriginalReplicas, raw)
	}

	out, err := s.setReplicas(ctx, d, int32(replicas))
	s.recordAction(actionOn, err)

	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "deployment turned on", "replicas", replicas)

	return out, nil
}

func (s *Service) setReplicas(
	ctx context.Context,
	d *workload.Deployment,
	replicas int32,
) (*workload.Deployment, error) {
	annotations := make(map[string]string, 1)
	if _, ok := d.Metadata.Annotations[workload.AnnotationOriginalReplicas]; !ok {
		annotations[workload.AnnotationOriginalReplicas] = strconv.Itoa(int(d.Spec.DesiredReplicas()))
	}

	out, err := s.repo.ScaleDeploymentCommand(ctx, s.cfg.Namespace, d.Metadata.Name, replicas, annotations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScaleDeployment, err)
	}

	s.invalidate()

	return out, nil
}

// RestartCommand triggers a rolling restart by bumping the restart serial
// label of the pod template.
func (s *Service) RestartCommand(ctx context.Context, name string) error {
	logger := s.logger.With("deployment", name, "action", actionRestart)

	if workload.IsProtected(name) {
		return fmt.Errorf("restart %q: %w", name, ErrProtectedWorkload)
	}

	d, err := s.repo.GetDeploymentQuery(ctx, s.cfg.Namespace, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetDeployment, err)
	}

	serial := 0

	if raw, ok := d.Spec.Template.Metadata.Labels[workload.LabelRollingRestartSerial]; ok {
		serial, err = strconv.Atoi(raw)
		if err != nil {
			logger.WarnContext(ctx, "restart serial is not a number, starting over", "serial", raw)

			serial = 0
		}
	}

	serial++

	err = s.repo.PatchPodTemplateLabelsCommand(ctx, s.cfg.Namespace, name, map[string]string{
		workload.LabelRollingRestartSerial: strconv.Itoa(serial),
	})
	s.recordAction(actionRestart, err)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrRestartDeployment, err)
	}

	s.invalidate()

	logger.InfoContext(ctx, "deployment restarted", "serial", serial)

	return nil
}

// DeletePodCommand deletes one pod; its controller recreates it.
func (s *Service) DeletePodCommand(ctx context.Context, name string) error {
	err := s.repo.DeletePodCommand(ctx, s.cfg.Namespace, name)
	s.recordAction(actionDeletePod, err)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeletePod, err)
	}

	s.invalidate()

	s.logger.InfoContext(ctx, "pod deleted", "pod", name)

	return nil
}

// DeleteAllPodsCommand deletes every pod of the namespace except the
// dashboard's own. A failed deletion does not stop the others.
func (s *Service) DeleteAllPodsCommand(ctx context.Context) ([]PodDeletion, error) {
	snapshot, err := s.SnapshotQuery(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(snapshot.Pods.Items))

	for i := range snapshot.Pods.Items {
		name := snapshot.Pods.Items[i].Metadata.Name
		if workload.IsProtected(name) {
			continue
		}

		names = append(names, name)
	}

	results := make([]PodDeletion, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteAllConcurrency)

	for i, name := range names {
		g.Go(func() error {
			results[i] = PodDeletion{Name: name, Deleted: true}

			err := s.repo.DeletePodCommand(gctx, s.cfg.Namespace, name)
			s.recordAction(actionDeletePod, err)

			if err != nil {
				results[i].Deleted = false
				results[i].Error = err.Error()
			}

			return nil
		})
	}

	_ = g.Wait()

	s.invalidate()

	s.logger.InfoContext(ctx, "pods deleted", "count", len(names))

	return results, nil
}

// PodLogQuery returns the tail of a container log.
func (s *Service) PodLogQuery(ctx context.Context, pod, container string, timestamps bool) ([]byte, error) {
	out, err := s.repo.GetPodLogQuery(ctx, s.cfg.Namespace, pod, LogOptions{
		Container:  container,
		TailLines:  s.cfg.LogTailLines,
		Timestamps: timestamps,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPodLog, err)
	}

	return out, nil
}

func (s *Service) recordAction(action string, err error) {
	if err != nil {
		s.recorder.IncAction(action, outcomeError)

		return
	}

	s.recorder.IncAction(action, outcomeSuccess)
}
