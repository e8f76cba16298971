package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/masking"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

type recordingInvoker struct {
	mu    sync.Mutex
	tools []string
}

func (r *recordingInvoker) Invoke(_ context.Context, toolName string, _ map[string]interface{}) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools = append(r.tools, toolName)
	return map[string]interface{}{"done": true}, nil
}

func (r *recordingInvoker) HasHandler(string) bool { return true }

func (r *recordingInvoker) RequiresApproval(string) bool { return false }

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{WorkerCount: 1, PollIntervalSec: 1}
}

func newApproved(t *testing.T, client *ent.Client, requestedAt time.Time) *ent.PendingAction {
	t.Helper()
	action, err := client.PendingAction.Create().
		SetID(uuid.New().String()).
		SetToolName("bot_email_send").
		SetToolArgs(map[string]interface{}{"to": "ops@example.com"}).
		SetStatus(pendingaction.StatusApproved).
		SetRequestedAt(requestedAt).
		SetExpiresAt(requestedAt.Add(48 * time.Hour)).
		SetDecidedBy("owner").
		SetDecidedAt(requestedAt).
		Save(context.Background())
	require.NoError(t, err)
	return action
}

func TestWorkerClaimNextAction(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	executor := approval.NewExecutor(db.Client, &recordingInvoker{}, masking.NewService(nil))
	now := time.Now().UTC()

	older := newApproved(t, db.Client, now.Add(-time.Minute))
	newer := newApproved(t, db.Client, now)

	worker := NewWorker("executor-0", approval.BootEpoch(), db.Client, testQueueConfig(), executor, nil)

	t.Run("oldest unclaimed action first", func(t *testing.T) {
		claimed, err := worker.claimNextAction(ctx)
		require.NoError(t, err)
		assert.Equal(t, older.ID, claimed.ID)
		require.NotNil(t, claimed.DispatchEpoch)
		assert.Equal(t, approval.BootEpoch(), *claimed.DispatchEpoch)
	})

	t.Run("claimed actions are not claimed again", func(t *testing.T) {
		claimed, err := worker.claimNextAction(ctx)
		require.NoError(t, err)
		assert.Equal(t, newer.ID, claimed.ID)

		_, err = worker.claimNextAction(ctx)
		assert.ErrorIs(t, err, ErrNoActionsAvailable)
	})

	t.Run("pending and flagged rows are skipped", func(t *testing.T) {
		pending := newApproved(t, db.Client, now)
		_, err := db.Client.PendingAction.UpdateOneID(pending.ID).
			SetStatus(pendingaction.StatusPending).
			Save(ctx)
		require.NoError(t, err)

		flagged := newApproved(t, db.Client, now)
		_, err = db.Client.PendingAction.UpdateOneID(flagged.ID).
			SetNeedsReconciliation(true).
			Save(ctx)
		require.NoError(t, err)

		_, err = worker.claimNextAction(ctx)
		assert.ErrorIs(t, err, ErrNoActionsAvailable)
	})
}

func TestWorkersNeverShareAClaim(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	invoker := &recordingInvoker{}
	executor := approval.NewExecutor(db.Client, invoker, masking.NewService(nil))

	action := newApproved(t, db.Client, time.Now().UTC())
	epoch := approval.BootEpoch()
	workers := []*Worker{
		NewWorker("executor-0", epoch, db.Client, testQueueConfig(), executor, nil),
		NewWorker("executor-1", epoch, db.Client, testQueueConfig(), executor, nil),
	}

	// SKIP LOCKED claim: exactly one racer gets the row, the other sees an
	// empty queue.
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		claimed []*ent.PendingAction
		misses  int
	)
	for _, w := range workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			got, err := w.claimNextAction(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, ErrNoActionsAvailable)
				misses++
				return
			}
			claimed = append(claimed, got)
		}(w)
	}
	wg.Wait()

	require.Len(t, claimed, 1)
	assert.Equal(t, 1, misses)
	assert.Equal(t, action.ID, claimed[0].ID)

	_, err := executor.RunPersisted(ctx, claimed[0])
	require.NoError(t, err)

	// One invocation, one persisted result, one execution event.
	invoker.mu.Lock()
	assert.Equal(t, []string{"bot_email_send"}, invoker.tools)
	invoker.mu.Unlock()

	got, err := db.Client.PendingAction.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, got.Status)
	require.NotNil(t, got.ExecutionResult)
	assert.True(t, got.ExecutionResult.Success)

	executions, err := db.Client.ApprovalEvent.Query().
		Where(
			approvalevent.ActionIDEQ(action.ID),
			approvalevent.EventTypeEQ(approvalevent.EventTypeExecutionSucceeded),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, executions)
}

func TestPoolExecutesApprovedActions(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	invoker := &recordingInvoker{}
	executor := approval.NewExecutor(db.Client, invoker, masking.NewService(nil))

	action := newApproved(t, db.Client, time.Now().UTC())

	pool := NewWorkerPool(db.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		got, err := db.Client.PendingAction.Get(ctx, action.ID)
		return err == nil && got.Status == pendingaction.StatusExecuted
	}, 10*time.Second, 100*time.Millisecond)

	got, err := db.Client.PendingAction.Get(ctx, action.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExecutionResult)
	assert.True(t, got.ExecutionResult.Success)
	require.NotNil(t, got.DispatchEpoch)
	assert.Equal(t, pool.Epoch(), *got.DispatchEpoch)
}

func TestPoolReconcilesForeignClaims(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	executor := approval.NewExecutor(db.Client, &recordingInvoker{}, masking.NewService(nil))
	now := time.Now().UTC()

	// Claimed by a previous boot; whether it ran is unknowable.
	foreign := newApproved(t, db.Client, now)
	_, err := db.Client.PendingAction.UpdateOneID(foreign.ID).
		SetDispatchEpoch(uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool(db.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	got, err := db.Client.PendingAction.Get(ctx, foreign.ID)
	require.NoError(t, err)
	assert.True(t, got.NeedsReconciliation)
	assert.Equal(t, pendingaction.StatusApproved, got.Status)

	// Flagged rows stay out of the claim path until an operator clears them.
	require.Never(t, func() bool {
		got, err := db.Client.PendingAction.Get(ctx, foreign.ID)
		return err == nil && got.Status != pendingaction.StatusApproved
	}, 2*time.Second, 200*time.Millisecond)
}

func TestPoolHealth(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	executor := approval.NewExecutor(db.Client, &recordingInvoker{}, masking.NewService(nil))

	pool := NewWorkerPool(db.Client, testQueueConfig(), executor, nil)

	t.Run("unstarted pool is unhealthy", func(t *testing.T) {
		health := pool.Health(ctx)
		assert.False(t, health.IsHealthy)
		assert.Zero(t, health.TotalWorkers)
	})

	t.Run("started pool reports workers and epoch", func(t *testing.T) {
		require.NoError(t, pool.Start(ctx))
		defer pool.Stop()

		health := pool.Health(ctx)
		assert.True(t, health.IsHealthy)
		assert.True(t, health.DBReachable)
		assert.Equal(t, 1, health.TotalWorkers)
		assert.Equal(t, pool.Epoch(), health.DispatchEpoch)
	})
}
