package approval

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/masking"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

func createApproved(t *testing.T, client *ent.Client) *ent.PendingAction {
	t.Helper()
	now := time.Now().UTC()
	action, err := client.PendingAction.Create().
		SetID(uuid.New().String()).
		SetToolName("bot_email_send").
		SetToolArgs(map[string]interface{}{"to": "ops@example.com"}).
		SetStatus(pendingaction.StatusApproved).
		SetRequestedAt(now).
		SetExpiresAt(now.Add(time.Hour)).
		SetDecidedBy("owner").
		SetDecidedAt(now).
		SetRiskTier(pendingaction.RiskTierMedium).
		Save(context.Background())
	require.NoError(t, err)
	return action
}

func TestExecutorRunPersisted(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	invoker := newStubInvoker()
	invoker.handlers["bot_email_send"] = func(args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"message_id": "m-9"}, nil
	}
	exec := NewExecutor(db.Client, invoker, masking.NewService(nil))

	action := createApproved(t, db.Client)
	outcome, err := exec.RunPersisted(ctx, action)
	require.NoError(t, err)
	assert.True(t, outcome.Success)

	reloaded, err := db.Client.PendingAction.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, reloaded.Status)
	require.NotNil(t, reloaded.ExecutionResult)
	assert.True(t, reloaded.ExecutionResult.Success)

	n, err := db.Client.ApprovalEvent.Query().
		Where(
			approvalevent.ActionIDEQ(action.ID),
			approvalevent.EventTypeEQ(approvalevent.EventTypeExecutionSucceeded),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExecutorMissingHandlerRecordsNullResult(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	exec := NewExecutor(db.Client, newStubInvoker(), masking.NewService(nil))

	action := createApproved(t, db.Client)
	outcome, err := exec.RunPersisted(ctx, action)
	require.NoError(t, err)

	// A handlerless approval still counts as executed; the approval itself
	// is the outcome.
	assert.True(t, outcome.Success)
	assert.Nil(t, outcome.Result)

	reloaded, err := db.Client.PendingAction.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, reloaded.Status)
}

func TestExecutorRefusesUnapprovedAction(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	exec := NewExecutor(db.Client, newStubInvoker(), masking.NewService(nil))

	action := createApproved(t, db.Client)
	_, err := db.Client.PendingAction.UpdateOneID(action.ID).
		SetStatus(pendingaction.StatusExecuted).
		Save(ctx)
	require.NoError(t, err)

	// The approved→executed CAS misses when the row left approved.
	_, err = exec.RunPersisted(ctx, action)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
