package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/models"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

type fakeRunner struct {
	mu      sync.Mutex
	runs    []string
	outcome *models.SessionOutcome
}

func (f *fakeRunner) RunTask(_ context.Context, task *ent.ScheduledTask) (*models.SessionOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, task.Name)
	if f.outcome != nil {
		return f.outcome, nil
	}
	return &models.SessionOutcome{OutputSummary: "done"}, nil
}

func (f *fakeRunner) runNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.runs...)
}

func newScheduler(t *testing.T, cfg *config.SchedulerConfig, runner Runner) (*Scheduler, *ent.Client) {
	db := dbtest.NewTestClient(t)
	if cfg == nil {
		cfg = &config.SchedulerConfig{TickSeconds: 1}
	}
	if runner == nil {
		runner = &fakeRunner{}
	}
	return New(db.Client, cfg, time.UTC, runner, nil, nil), db.Client
}

func createCronTask(t *testing.T, client *ent.Client, name string, nextRunAt time.Time) *ent.ScheduledTask {
	t.Helper()
	task, err := client.ScheduledTask.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetCron("0 9 * * *").
		SetPrompt("summarize the inbox").
		SetSource(scheduledtask.SourceRuntime).
		SetEnabled(true).
		SetNextRunAt(nextRunAt).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func TestNextFire(t *testing.T) {
	t.Run("evaluated in the butler timezone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		// 2026-01-05 00:00 UTC is 09:00 in Tokyo; the next 09:00 Tokyo
		// slot is the following day, 2026-01-06 00:00 UTC.
		after := time.Date(2026, 1, 5, 0, 30, 0, 0, time.UTC)
		next, err := NextFire("0 9 * * *", tokyo, after)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("result is UTC", func(t *testing.T) {
		next, err := NextFire("*/5 * * * *", time.UTC, time.Date(2026, 1, 5, 10, 2, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, next.Location())
		assert.Equal(t, time.Date(2026, 1, 5, 10, 5, 0, 0, time.UTC), next)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := NextFire("not a cron", time.UTC, time.Now())
		assert.Error(t, err)
	})
}

func TestClaimSlot(t *testing.T) {
	ctx := context.Background()
	sched, client := newScheduler(t, nil, nil)
	now := time.Now().UTC()

	t.Run("cron task advances next_run_at from now", func(t *testing.T) {
		task := createCronTask(t, client, "daily-digest", now.Add(-time.Minute))

		claimed, err := sched.claimSlot(ctx, task, now)
		require.NoError(t, err)
		assert.True(t, claimed)

		reloaded, err := client.ScheduledTask.Get(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.NextRunAt)
		assert.True(t, reloaded.NextRunAt.After(now))
		require.NotNil(t, reloaded.LastRunAt)
	})

	t.Run("stale read loses the race", func(t *testing.T) {
		task := createCronTask(t, client, "weekly-report", now.Add(-time.Minute))

		claimed, err := sched.claimSlot(ctx, task, now)
		require.NoError(t, err)
		assert.True(t, claimed)

		// The in-memory task still holds the pre-claim next_run_at, so a
		// second claim with the same snapshot misses.
		claimed, err = sched.claimSlot(ctx, task, now)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("one-shot disables itself", func(t *testing.T) {
		start := now.Add(-time.Minute)
		task, err := client.ScheduledTask.Create().
			SetID(uuid.New().String()).
			SetName("remind-once").
			SetPrompt("remind about the dentist").
			SetSource(scheduledtask.SourceRuntime).
			SetEnabled(true).
			SetStartAt(start).
			SetNextRunAt(start).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := sched.claimSlot(ctx, task, now)
		require.NoError(t, err)
		assert.True(t, claimed)

		reloaded, err := client.ScheduledTask.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.Enabled)
		assert.Nil(t, reloaded.NextRunAt)
	})
}

func TestTickFiresDueTasks(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{}
	sched, client := newScheduler(t, nil, runner)
	now := time.Now().UTC()

	due := createCronTask(t, client, "due-task", now.Add(-time.Minute))
	createCronTask(t, client, "future-task", now.Add(time.Hour))

	disabled := createCronTask(t, client, "disabled-task", now.Add(-time.Minute))
	_, err := client.ScheduledTask.UpdateOneID(disabled.ID).SetEnabled(false).Save(ctx)
	require.NoError(t, err)

	sched.tick(ctx)
	sched.wg.Wait()

	assert.Equal(t, []string{"due-task"}, runner.runNames())

	reloaded, err := client.ScheduledTask.Get(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, "done", reloaded.LastResult)
}

func TestTickRecordsFailure(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{outcome: &models.SessionOutcome{Err: "worker exited 1"}}
	sched, client := newScheduler(t, nil, runner)

	task := createCronTask(t, client, "flaky-task", time.Now().UTC().Add(-time.Minute))

	sched.tick(ctx)
	sched.wg.Wait()

	reloaded, err := client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "error: worker exited 1", reloaded.LastResult)
}

func TestTickRunsSweeper(t *testing.T) {
	db := dbtest.NewTestClient(t)
	swept := 0
	sweep := func(ctx context.Context) (int, error) {
		swept++
		return 0, nil
	}
	sched := New(db.Client, &config.SchedulerConfig{TickSeconds: 1}, time.UTC, &fakeRunner{}, nil, sweep)

	sched.tick(context.Background())
	assert.Equal(t, 1, swept)
}

func TestRunNow(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{}
	sched, client := newScheduler(t, nil, runner)

	task := createCronTask(t, client, "on-demand", time.Now().UTC().Add(time.Hour))

	require.NoError(t, sched.RunNow(ctx, task.ID))
	sched.wg.Wait()
	assert.Equal(t, []string{"on-demand"}, runner.runNames())

	assert.ErrorIs(t, sched.RunNow(ctx, uuid.New().String()), ErrTaskNotFound)
}

func TestReconcileStaticTasks(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("creates missing config tasks", func(t *testing.T) {
		cfg := &config.SchedulerConfig{
			TickSeconds: 1,
			Tasks: []config.StaticTaskConfig{
				{Name: "morning-brief", Cron: "0 8 * * *", Prompt: "prepare the morning brief"},
			},
		}
		sched, client := newScheduler(t, cfg, nil)

		require.NoError(t, sched.reconcileStaticTasks(ctx))

		task, err := client.ScheduledTask.Query().
			Where(scheduledtask.NameEQ("morning-brief")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, scheduledtask.SourceToml, task.Source)
		assert.True(t, task.Enabled)
		require.NotNil(t, task.NextRunAt)
		assert.True(t, task.NextRunAt.After(now))
	})

	t.Run("updates changed config tasks in place", func(t *testing.T) {
		cfg := &config.SchedulerConfig{
			TickSeconds: 1,
			Tasks: []config.StaticTaskConfig{
				{Name: "morning-brief", Cron: "0 8 * * *", Prompt: "v1"},
			},
		}
		sched, client := newScheduler(t, cfg, nil)
		require.NoError(t, sched.reconcileStaticTasks(ctx))

		cfg.Tasks[0].Prompt = "v2"
		require.NoError(t, sched.reconcileStaticTasks(ctx))

		task, err := client.ScheduledTask.Query().
			Where(scheduledtask.NameEQ("morning-brief")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "v2", task.Prompt)

		// One row throughout, not a new task per edit.
		n, err := client.ScheduledTask.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("disables config tasks removed from the file", func(t *testing.T) {
		cfg := &config.SchedulerConfig{
			TickSeconds: 1,
			Tasks: []config.StaticTaskConfig{
				{Name: "keep-me", Cron: "0 8 * * *", Prompt: "keep"},
				{Name: "drop-me", Cron: "0 9 * * *", Prompt: "drop"},
			},
		}
		sched, client := newScheduler(t, cfg, nil)
		require.NoError(t, sched.reconcileStaticTasks(ctx))

		cfg.Tasks = cfg.Tasks[:1]
		require.NoError(t, sched.reconcileStaticTasks(ctx))

		dropped, err := client.ScheduledTask.Query().
			Where(scheduledtask.NameEQ("drop-me")).
			Only(ctx)
		require.NoError(t, err)
		assert.False(t, dropped.Enabled)
		assert.Nil(t, dropped.NextRunAt)

		kept, err := client.ScheduledTask.Query().
			Where(scheduledtask.NameEQ("keep-me")).
			Only(ctx)
		require.NoError(t, err)
		assert.True(t, kept.Enabled)
	})

	t.Run("never touches runtime tasks", func(t *testing.T) {
		cfg := &config.SchedulerConfig{
			TickSeconds: 1,
			Tasks: []config.StaticTaskConfig{
				{Name: "errands", Cron: "0 8 * * *", Prompt: "from config"},
			},
		}
		sched, client := newScheduler(t, cfg, nil)
		runtime := createCronTask(t, client, "errands", now.Add(time.Hour))

		require.NoError(t, sched.reconcileStaticTasks(ctx))

		reloaded, err := client.ScheduledTask.Get(ctx, runtime.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtask.SourceRuntime, reloaded.Source)
		assert.Equal(t, "summarize the inbox", reloaded.Prompt)
	})
}
