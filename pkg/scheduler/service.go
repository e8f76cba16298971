package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/models"
)

var (
	// ErrTaskNotFound is returned when a task ID does not exist.
	ErrTaskNotFound = errors.New("scheduled task not found")

	// ErrTaskExists is returned on a task name collision.
	ErrTaskExists = errors.New("scheduled task with this name already exists")

	// ErrTaskStatic is returned when deleting a config-sourced task. Those
	// are removed from the config file, not through the API.
	ErrTaskStatic = errors.New("config-sourced tasks cannot be deleted")

	// ErrTaskInvalid wraps request validation failures.
	ErrTaskInvalid = errors.New("invalid task")
)

// Service is the task CRUD surface shared by the dashboard and the worker's
// schedule tools.
type Service struct {
	client *ent.Client
	loc    *time.Location
}

// NewService creates the task service.
func NewService(client *ent.Client, loc *time.Location) *Service {
	return &Service{client: client, loc: loc}
}

// Create adds a runtime task. Either cron or start_at is required.
func (s *Service) Create(ctx context.Context, req models.CreateTaskRequest) (*ent.ScheduledTask, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrTaskInvalid)
	}
	if req.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrTaskInvalid)
	}
	if req.Cron == "" && req.StartAt == nil {
		return nil, fmt.Errorf("%w: either cron or start_at is required", ErrTaskInvalid)
	}

	builder := s.client.ScheduledTask.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetPrompt(req.Prompt).
		SetSource(scheduledtask.SourceRuntime).
		SetEnabled(true)

	if req.Cron != "" {
		if _, err := config.ParseCron(req.Cron); err != nil {
			return nil, fmt.Errorf("%w: invalid cron %q: %v", ErrTaskInvalid, req.Cron, err)
		}
		next, err := NextFire(req.Cron, s.loc, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		builder.SetCron(req.Cron).SetNextRunAt(next)
	} else {
		builder.SetStartAt(*req.StartAt).SetNextRunAt(req.StartAt.UTC())
	}

	task, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrTaskExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update patches a task. Nil fields are left unchanged; schedule changes
// recompute next_run_at.
func (s *Service) Update(ctx context.Context, taskID string, req models.UpdateTaskRequest) (*ent.ScheduledTask, error) {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	update := task.Update()
	now := time.Now().UTC()

	if req.Prompt != nil {
		update.SetPrompt(*req.Prompt)
	}
	if req.Cron != nil {
		if *req.Cron == "" {
			update.ClearCron()
		} else {
			if _, err := config.ParseCron(*req.Cron); err != nil {
				return nil, fmt.Errorf("%w: invalid cron %q: %v", ErrTaskInvalid, *req.Cron, err)
			}
			next, err := NextFire(*req.Cron, s.loc, now)
			if err != nil {
				return nil, err
			}
			update.SetCron(*req.Cron).SetNextRunAt(next)
		}
	}
	if req.StartAt != nil {
		update.SetStartAt(*req.StartAt).SetNextRunAt(req.StartAt.UTC())
	}
	if req.Enabled != nil {
		if err := s.applyToggle(update, task, *req.Enabled, req.Cron, now); err != nil {
			return nil, err
		}
	}

	task, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return task, nil
}

// Toggle flips a task's enabled flag. Re-enabling a cron task recomputes its
// next fire from now rather than replaying missed slots.
func (s *Service) Toggle(ctx context.Context, taskID string, enabled bool) (*ent.ScheduledTask, error) {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	update := task.Update()
	if err := s.applyToggle(update, task, enabled, nil, time.Now().UTC()); err != nil {
		return nil, err
	}
	task, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task %s: %w", taskID, err)
	}
	return task, nil
}

func (s *Service) applyToggle(update *ent.ScheduledTaskUpdateOne, task *ent.ScheduledTask, enabled bool, newCron *string, now time.Time) error {
	update.SetEnabled(enabled)
	if !enabled {
		update.ClearNextRunAt()
		return nil
	}

	cronExpr := task.Cron
	if newCron != nil {
		cronExpr = *newCron
	}
	switch {
	case cronExpr != "":
		next, err := NextFire(cronExpr, s.loc, now)
		if err != nil {
			return err
		}
		update.SetNextRunAt(next)
	case task.StartAt != nil && task.LastRunAt == nil:
		update.SetNextRunAt(task.StartAt.UTC())
	}
	return nil
}

// Delete removes a runtime task. Config-sourced tasks are rejected.
func (s *Service) Delete(ctx context.Context, taskID string) error {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Source == scheduledtask.SourceToml {
		return ErrTaskStatic
	}
	if err := s.client.ScheduledTask.DeleteOneID(taskID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	return nil
}

// Get loads one task.
func (s *Service) Get(ctx context.Context, taskID string) (*ent.ScheduledTask, error) {
	task, err := s.client.ScheduledTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	return task, nil
}

// Find resolves a task by ID or unique name. The dashboard addresses tasks
// by name; the tool surface uses IDs.
func (s *Service) Find(ctx context.Context, ref string) (*ent.ScheduledTask, error) {
	task, err := s.client.ScheduledTask.Query().
		Where(scheduledtask.Or(
			scheduledtask.IDEQ(ref),
			scheduledtask.NameEQ(ref),
		)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to resolve task %s: %w", ref, err)
	}
	return task, nil
}

// List returns all tasks ordered by name.
func (s *Service) List(ctx context.Context) ([]*ent.ScheduledTask, error) {
	tasks, err := s.client.ScheduledTask.Query().
		Order(ent.Asc(scheduledtask.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
