package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/pkg/models"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

func newTaskService(t *testing.T) (*Service, *ent.Client) {
	db := dbtest.NewTestClient(t)
	return NewService(db.Client, time.UTC), db.Client
}

func strPtr(s string) *string { return &s }

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService(t)

	t.Run("cron task", func(t *testing.T) {
		task, err := svc.Create(ctx, models.CreateTaskRequest{
			Name:   "daily-digest",
			Prompt: "summarize unread mail",
			Cron:   "0 9 * * *",
		})
		require.NoError(t, err)
		assert.Equal(t, scheduledtask.SourceRuntime, task.Source)
		assert.True(t, task.Enabled)
		require.NotNil(t, task.NextRunAt)
	})

	t.Run("one-shot task", func(t *testing.T) {
		at := time.Now().UTC().Add(2 * time.Hour)
		task, err := svc.Create(ctx, models.CreateTaskRequest{
			Name:    "remind-dentist",
			Prompt:  "remind about the dentist",
			StartAt: &at,
		})
		require.NoError(t, err)
		assert.Empty(t, task.Cron)
		require.NotNil(t, task.NextRunAt)
		assert.True(t, task.NextRunAt.Equal(at))
	})

	t.Run("name collision", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateTaskRequest{
			Name:   "daily-digest",
			Prompt: "again",
			Cron:   "0 9 * * *",
		})
		assert.ErrorIs(t, err, ErrTaskExists)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateTaskRequest{Prompt: "p", Cron: "0 9 * * *"})
		assert.ErrorIs(t, err, ErrTaskInvalid)

		_, err = svc.Create(ctx, models.CreateTaskRequest{Name: "n", Cron: "0 9 * * *"})
		assert.ErrorIs(t, err, ErrTaskInvalid)

		_, err = svc.Create(ctx, models.CreateTaskRequest{Name: "n", Prompt: "p"})
		assert.ErrorIs(t, err, ErrTaskInvalid)

		_, err = svc.Create(ctx, models.CreateTaskRequest{Name: "n", Prompt: "p", Cron: "whenever"})
		assert.ErrorIs(t, err, ErrTaskInvalid)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService(t)

	task, err := svc.Create(ctx, models.CreateTaskRequest{
		Name:   "daily-digest",
		Prompt: "v1",
		Cron:   "0 9 * * *",
	})
	require.NoError(t, err)

	t.Run("patch prompt only", func(t *testing.T) {
		updated, err := svc.Update(ctx, task.ID, models.UpdateTaskRequest{Prompt: strPtr("v2")})
		require.NoError(t, err)
		assert.Equal(t, "v2", updated.Prompt)
		assert.Equal(t, "0 9 * * *", updated.Cron)
	})

	t.Run("cron change recomputes next fire", func(t *testing.T) {
		before, err := svc.Get(ctx, task.ID)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, task.ID, models.UpdateTaskRequest{Cron: strPtr("*/5 * * * *")})
		require.NoError(t, err)
		require.NotNil(t, updated.NextRunAt)
		assert.False(t, updated.NextRunAt.Equal(*before.NextRunAt))
	})

	t.Run("invalid cron rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, task.ID, models.UpdateTaskRequest{Cron: strPtr("nope")})
		assert.ErrorIs(t, err, ErrTaskInvalid)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New().String(), models.UpdateTaskRequest{Prompt: strPtr("x")})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestServiceToggle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService(t)

	task, err := svc.Create(ctx, models.CreateTaskRequest{
		Name:   "daily-digest",
		Prompt: "p",
		Cron:   "0 9 * * *",
	})
	require.NoError(t, err)

	disabled, err := svc.Toggle(ctx, task.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.Enabled)
	assert.Nil(t, disabled.NextRunAt)

	// Re-enabling computes the next fire from now, never replaying the gap.
	enabled, err := svc.Toggle(ctx, task.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.Enabled)
	require.NotNil(t, enabled.NextRunAt)
	assert.True(t, enabled.NextRunAt.After(time.Now().UTC()))
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, client := newTaskService(t)

	t.Run("runtime task deleted", func(t *testing.T) {
		task, err := svc.Create(ctx, models.CreateTaskRequest{
			Name:   "temp",
			Prompt: "p",
			Cron:   "0 9 * * *",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, task.ID))
		_, err = svc.Get(ctx, task.ID)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("config task refused", func(t *testing.T) {
		static, err := client.ScheduledTask.Create().
			SetID(uuid.New().String()).
			SetName("from-config").
			SetCron("0 9 * * *").
			SetPrompt("p").
			SetSource(scheduledtask.SourceToml).
			SetEnabled(true).
			Save(ctx)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Delete(ctx, static.ID), ErrTaskStatic)
	})
}

func TestServiceFind(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService(t)

	task, err := svc.Create(ctx, models.CreateTaskRequest{
		Name:   "daily-digest",
		Prompt: "p",
		Cron:   "0 9 * * *",
	})
	require.NoError(t, err)

	byID, err := svc.Find(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, byID.ID)

	byName, err := svc.Find(ctx, "daily-digest")
	require.NoError(t, err)
	assert.Equal(t, task.ID, byName.ID)

	_, err = svc.Find(ctx, "no-such-task")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
