package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/pkg/config"
)

// reconcileStaticTasks aligns the database with the [[modules.scheduler.tasks]]
// entries: missing tasks are created, changed tasks are updated in place, and
// config-sourced tasks that left the file are disabled. Nothing is deleted,
// and runtime-created tasks are never touched.
func (s *Scheduler) reconcileStaticTasks(ctx context.Context) error {
	now := time.Now().UTC()
	configured := make(map[string]bool, len(s.cfg.Tasks))

	for _, tc := range s.cfg.Tasks {
		configured[tc.Name] = true

		existing, err := s.client.ScheduledTask.Query().
			Where(scheduledtask.NameEQ(tc.Name)).
			Only(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return fmt.Errorf("failed to load task %q: %w", tc.Name, err)
			}
			if err := s.createStaticTask(ctx, tc, now); err != nil {
				return err
			}
			continue
		}

		if existing.Source == scheduledtask.SourceRuntime {
			slog.Warn("Config task name collides with a runtime task, skipping",
				"task", tc.Name)
			continue
		}
		if err := s.updateStaticTask(ctx, existing, tc, now); err != nil {
			return err
		}
	}

	// Config-sourced tasks no longer in the file are disabled, keeping their
	// run history.
	n, err := s.client.ScheduledTask.Update().
		Where(
			scheduledtask.SourceEQ(scheduledtask.SourceToml),
			scheduledtask.Enabled(true),
			scheduledtask.NameNotIn(keys(configured)...),
		).
		SetEnabled(false).
		ClearNextRunAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to disable removed config tasks: %w", err)
	}
	if n > 0 {
		slog.Info("Disabled config tasks removed from file", "count", n)
	}
	return nil
}

func (s *Scheduler) createStaticTask(ctx context.Context, tc config.StaticTaskConfig, now time.Time) error {
	builder := s.client.ScheduledTask.Create().
		SetID(uuid.New().String()).
		SetName(tc.Name).
		SetPrompt(tc.Prompt).
		SetSource(scheduledtask.SourceToml).
		SetEnabled(true)

	if tc.Cron != "" {
		next, err := NextFire(tc.Cron, s.loc, now)
		if err != nil {
			return fmt.Errorf("task %q: %w", tc.Name, err)
		}
		builder.SetCron(tc.Cron).SetNextRunAt(next)
	} else if tc.StartAt != nil {
		builder.SetStartAt(*tc.StartAt).SetNextRunAt(tc.StartAt.UTC())
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create config task %q: %w", tc.Name, err)
	}
	slog.Info("Config task created", "task", tc.Name, "cron", tc.Cron)
	return nil
}

func (s *Scheduler) updateStaticTask(ctx context.Context, existing *ent.ScheduledTask, tc config.StaticTaskConfig, now time.Time) error {
	changed := existing.Prompt != tc.Prompt || existing.Cron != tc.Cron
	reEnabled := !existing.Enabled && tc.Cron != ""
	if !changed && !reEnabled {
		return nil
	}

	update := existing.Update().SetPrompt(tc.Prompt).SetCron(tc.Cron)
	if tc.Cron != "" {
		next, err := NextFire(tc.Cron, s.loc, now)
		if err != nil {
			return fmt.Errorf("task %q: %w", tc.Name, err)
		}
		update.SetEnabled(true).SetNextRunAt(next)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update config task %q: %w", tc.Name, err)
	}
	slog.Info("Config task updated", "task", tc.Name)
	return nil
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
