// Package scheduler fires recurring and one-shot tasks by spawning worker
// sessions. Firing is a database compare and swap on next_run_at, so two
// processes sharing a database never double-fire the same slot.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Runner executes one task's worker session and returns a result summary.
// Implemented by the worker spawner.
type Runner interface {
	RunTask(ctx context.Context, task *ent.ScheduledTask) (*models.SessionOutcome, error)
}

// Sweeper is a per-tick housekeeping hook. The approval service's stale
// expiry sweep rides the scheduler tick instead of owning its own loop.
type Sweeper func(ctx context.Context) (int, error)

// Scheduler owns the tick loop.
type Scheduler struct {
	client   *ent.Client
	cfg      *config.SchedulerConfig
	loc      *time.Location
	runner   Runner
	notifier *events.Notifier
	sweep    Sweeper

	cancel context.CancelFunc
	done   chan struct{}

	// inFlight guards against a slow task overlapping its own next fire.
	mu       sync.Mutex
	inFlight map[string]bool
	wg       sync.WaitGroup
}

// New creates a Scheduler. notifier and sweep may be nil.
func New(client *ent.Client, cfg *config.SchedulerConfig, loc *time.Location, runner Runner, notifier *events.Notifier, sweep Sweeper) *Scheduler {
	return &Scheduler{
		client:   client,
		cfg:      cfg,
		loc:      loc,
		runner:   runner,
		notifier: notifier,
		sweep:    sweep,
		inFlight: make(map[string]bool),
	}
}

// Start reconciles config-sourced tasks and launches the tick loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cancel != nil {
		return nil
	}

	if err := s.reconcileStaticTasks(ctx); err != nil {
		return err
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)

	slog.Info("Scheduler started", "tick_interval", s.cfg.TickInterval())
	return nil
}

// Stop signals the loop to exit and waits for in-flight task runs.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.tick(ctx)

	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick fires every due task once and runs the housekeeping sweep.
func (s *Scheduler) tick(ctx context.Context) {
	now := time.Now().UTC()

	due, err := s.client.ScheduledTask.Query().
		Where(
			scheduledtask.Enabled(true),
			scheduledtask.NextRunAtNotNil(),
			scheduledtask.NextRunAtLTE(now),
		).
		All(ctx)
	if err != nil {
		slog.Error("Scheduler tick query failed", "error", err)
		return
	}

	for _, task := range due {
		s.fire(ctx, task, now)
	}

	if s.sweep != nil {
		if _, err := s.sweep(ctx); err != nil {
			slog.Error("Scheduler housekeeping sweep failed", "error", err)
		}
	}
}

// fire claims one due slot and runs the task in a goroutine. A task whose
// previous run is still going is skipped; the slot stays claimed, so a
// missed window collapses into the single fire that claimed it.
func (s *Scheduler) fire(ctx context.Context, task *ent.ScheduledTask, now time.Time) {
	s.mu.Lock()
	if s.inFlight[task.ID] {
		s.mu.Unlock()
		slog.Warn("Task still running, skipping fire", "task", task.Name)
		return
	}
	s.mu.Unlock()

	claimed, err := s.claimSlot(ctx, task, now)
	if err != nil {
		slog.Error("Failed to claim task slot", "task", task.Name, "error", err)
		return
	}
	if !claimed {
		return
	}

	s.mu.Lock()
	s.inFlight[task.ID] = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.inFlight, task.ID)
			s.mu.Unlock()
		}()
		s.runTask(ctx, task)
	}()
}

// claimSlot performs the run-lock compare and swap: the update only lands
// when next_run_at still holds the value this tick read. Losing the race
// means another process fired the slot.
//
// The new next_run_at is computed from now, not from the missed slot, so a
// long outage yields exactly one catch-up fire.
func (s *Scheduler) claimSlot(ctx context.Context, task *ent.ScheduledTask, now time.Time) (bool, error) {
	update := s.client.ScheduledTask.Update().
		Where(
			scheduledtask.IDEQ(task.ID),
			scheduledtask.Enabled(true),
			scheduledtask.NextRunAtEQ(*task.NextRunAt),
		).
		SetLastRunAt(now)

	if task.Cron == "" {
		// One-shot: fires once, then disables itself.
		update.SetEnabled(false).ClearNextRunAt()
	} else {
		next, err := NextFire(task.Cron, s.loc, now)
		if err != nil {
			return false, err
		}
		update.SetNextRunAt(next)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// runTask executes the worker session for one fired slot and records the
// outcome on the task row.
func (s *Scheduler) runTask(ctx context.Context, task *ent.ScheduledTask) {
	log := slog.With("task", task.Name, "task_id", task.ID)
	log.Info("Scheduled task fired")

	outcome, err := s.runner.RunTask(ctx, task)

	result := ""
	switch {
	case err != nil:
		result = "error: " + err.Error()
	case outcome != nil && outcome.Err != "":
		result = "error: " + outcome.Err
	case outcome != nil:
		result = outcome.OutputSummary
	}

	if uerr := s.client.ScheduledTask.UpdateOneID(task.ID).
		SetLastResult(result).
		Exec(ctx); uerr != nil {
		log.Error("Failed to record task result", "error", uerr)
	}

	if err != nil || (outcome != nil && outcome.Err != "") {
		msg := result
		log.Error("Scheduled task run failed", "result", msg)
		if s.notifier != nil {
			s.notifier.TaskFailure(ctx, task.Name, msg)
		}
		return
	}
	log.Info("Scheduled task run complete")
}

// RunNow fires a task immediately, outside its schedule. The in-flight
// guard still applies.
func (s *Scheduler) RunNow(ctx context.Context, taskID string) error {
	task, err := s.client.ScheduledTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrTaskNotFound
		}
		return err
	}

	s.mu.Lock()
	if s.inFlight[task.ID] {
		s.mu.Unlock()
		return fmt.Errorf("task %q is already running", task.Name)
	}
	s.inFlight[task.ID] = true
	s.mu.Unlock()

	if err := s.client.ScheduledTask.UpdateOneID(task.ID).
		SetLastRunAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		slog.Warn("Failed to record manual run time", "task", task.Name, "error", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.inFlight, task.ID)
			s.mu.Unlock()
		}()
		s.runTask(ctx, task)
	}()
	return nil
}

// NextFire computes the next fire time for a cron expression evaluated in
// the butler's timezone, returned in UTC.
func NextFire(expr string, loc *time.Location, after time.Time) (time.Time, error) {
	sched, err := config.ParseCronIn(expr, loc)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(after.In(loc)).UTC(), nil
}
