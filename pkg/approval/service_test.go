package approval

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/models"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

func newServiceFixture(t *testing.T) (*Service, *ent.Client) {
	db := dbtest.NewTestClient(t)
	return NewService(db.Client, nil), db.Client
}

func createPending(t *testing.T, client *ent.Client, expiresAt time.Time) *ent.PendingAction {
	t.Helper()
	action, err := client.PendingAction.Create().
		SetID(uuid.New().String()).
		SetToolName("bot_email_send").
		SetToolArgs(map[string]interface{}{"to": "stranger@example.com", "body": "hello"}).
		SetStatus(pendingaction.StatusPending).
		SetRequestedAt(time.Now().UTC()).
		SetExpiresAt(expiresAt).
		SetRiskTier(pendingaction.RiskTierMedium).
		SetSessionID("sess-1").
		Save(context.Background())
	require.NoError(t, err)
	return action
}

func countEvents(t *testing.T, client *ent.Client, actionID string, eventType approvalevent.EventType) int {
	t.Helper()
	n, err := client.ApprovalEvent.Query().
		Where(
			approvalevent.ActionIDEQ(actionID),
			approvalevent.EventTypeEQ(eventType),
		).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestServiceApprove(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(time.Hour))

	decided, err := svc.Approve(ctx, action.ID, "owner", "looks fine")
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "owner", *decided.DecidedBy)
	require.NotNil(t, decided.DecidedAt)
	assert.Equal(t, 1, countEvents(t, client, action.ID, approvalevent.EventTypeApproved))
}

func TestServiceConcurrentApprovesConverge(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(time.Hour))

	// All racers converge on the approved row: one wins the CAS, the rest
	// observe the terminal state as an idempotent success.
	const approvers = 8
	var wg sync.WaitGroup
	errs := make(chan error, approvers)
	for i := 0; i < approvers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Approve(ctx, action.ID, fmt.Sprintf("owner-%d", i), "")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	got, err := client.PendingAction.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusApproved, got.Status)
	require.NotNil(t, got.DecidedBy)

	// Exactly one approved event: losers append nothing.
	assert.Equal(t, 1, countEvents(t, client, action.ID, approvalevent.EventTypeApproved))
}

func TestServiceApproveIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(time.Hour))

	_, err := svc.Approve(ctx, action.ID, "owner", "")
	require.NoError(t, err)

	// The repeat converges on the current row and appends nothing.
	again, err := svc.Approve(ctx, action.ID, "owner", "")
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusApproved, again.Status)
	assert.Equal(t, 1, countEvents(t, client, action.ID, approvalevent.EventTypeApproved))
}

func TestServiceRejectAfterApproveConflicts(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(time.Hour))

	_, err := svc.Approve(ctx, action.ID, "owner", "")
	require.NoError(t, err)

	current, err := svc.Reject(ctx, action.ID, "owner", "changed my mind")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	require.NotNil(t, current)
	assert.Equal(t, pendingaction.StatusApproved, current.Status)
}

func TestServiceApproveAfterExecuted(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(time.Hour))

	_, err := svc.Approve(ctx, action.ID, "owner", "")
	require.NoError(t, err)
	_, err = client.PendingAction.UpdateOneID(action.ID).
		SetStatus(pendingaction.StatusExecuted).
		Save(ctx)
	require.NoError(t, err)

	// Approve of an executed action is a success; reject is a conflict.
	executed, err := svc.Approve(ctx, action.ID, "owner", "")
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, executed.Status)

	_, err = svc.Reject(ctx, action.ID, "owner", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestServiceDecideUnknownAction(t *testing.T) {
	svc, _ := newServiceFixture(t)
	_, err := svc.Approve(context.Background(), uuid.New().String(), "owner", "")
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestServiceLazyExpiry(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(-time.Minute))

	// A decision on an overdue action expires it instead of deciding.
	expired, err := svc.Approve(ctx, action.ID, "owner", "")
	assert.ErrorIs(t, err, ErrActionExpired)
	require.NotNil(t, expired)
	assert.Equal(t, pendingaction.StatusExpired, expired.Status)
	require.NotNil(t, expired.DecidedBy)
	assert.Equal(t, "system:expiry", *expired.DecidedBy)
	assert.Equal(t, 1, countEvents(t, client, action.ID, approvalevent.EventTypeExpired))
}

func TestServiceRejectAfterSweepReturnsExpiredState(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	action := createPending(t, client, time.Now().UTC().Add(-time.Hour))

	n, err := svc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Rejecting the swept action round-trips the expired row; no state
	// regression and no second expired event.
	rejected, err := svc.Reject(ctx, action.ID, "owner", "too late")
	assert.ErrorIs(t, err, ErrActionExpired)
	require.NotNil(t, rejected)
	assert.Equal(t, pendingaction.StatusExpired, rejected.Status)
	assert.Equal(t, 1, countEvents(t, client, action.ID, approvalevent.EventTypeExpired))
	assert.Zero(t, countEvents(t, client, action.ID, approvalevent.EventTypeRejected))
}

func TestServiceExpireStale(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)

	overdue := createPending(t, client, time.Now().UTC().Add(-time.Hour))
	fresh := createPending(t, client, time.Now().UTC().Add(time.Hour))

	n, err := svc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reloaded, err := client.PendingAction.Get(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExpired, reloaded.Status)

	untouched, err := client.PendingAction.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusPending, untouched.Status)

	// A second sweep finds nothing.
	n, err = svc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestServiceBatchDecide(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)

	a := createPending(t, client, time.Now().UTC().Add(time.Hour))
	b := createPending(t, client, time.Now().UTC().Add(-time.Minute))
	missing := uuid.New().String()

	out := svc.BatchDecide(ctx, models.BatchDecisionRequest{
		ActionIDs: []string{a.ID, b.ID, missing},
		Decision:  "approve",
		Actor:     "owner",
	})
	require.Len(t, out, 3)

	assert.Equal(t, string(pendingaction.StatusApproved), out[0].Status)
	assert.Empty(t, out[0].Error)

	// One failure never blocks the rest of the batch.
	assert.Equal(t, string(pendingaction.StatusExpired), out[1].Status)
	assert.NotEmpty(t, out[1].Error)

	assert.NotEmpty(t, out[2].Error)
}

func TestServiceCreateRuleInvariant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServiceFixture(t)

	_, err := svc.CreateRule(ctx, models.RuleSpec{
		ToolName: "bot_email_send",
		RiskTier: "high",
		ArgConstraints: map[string]models.ArgConstraint{
			"to": {Kind: models.ConstraintAny},
		},
	}, "owner")
	assert.ErrorIs(t, err, ErrRuleInvariant)

	ten := 10
	rule, err := svc.CreateRule(ctx, models.RuleSpec{
		ToolName: "bot_email_send",
		RiskTier: "high",
		ArgConstraints: map[string]models.ArgConstraint{
			"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
		},
		MaxUses: &ten,
	}, "owner")
	require.NoError(t, err)
	assert.True(t, rule.Active)
	assert.Equal(t, "high", string(rule.RiskTier))
}

func TestServiceCreateRuleFromAction(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)
	svc.DeclareSensitiveArgs("bot_email_send", []string{"to"})

	action := createPending(t, client, time.Now().UTC().Add(time.Hour))

	rule, err := svc.CreateRuleFromAction(ctx, action.ID, models.RuleSpec{
		Description: "allow this recipient",
	}, "owner")
	require.NoError(t, err)

	// Sensitive argument names pin to the stored value, the rest relax.
	assert.Equal(t, models.ArgConstraint{Kind: models.ConstraintExact, Value: "stranger@example.com"}, rule.ArgConstraints["to"])
	assert.Equal(t, models.ArgConstraint{Kind: models.ConstraintAny}, rule.ArgConstraints["body"])
	require.NotNil(t, rule.CreatedFromActionID)
	assert.Equal(t, action.ID, *rule.CreatedFromActionID)
	assert.Equal(t, string(action.RiskTier), string(rule.RiskTier))
}

func TestServiceCreateRuleFromMissingAction(t *testing.T) {
	svc, _ := newServiceFixture(t)
	_, err := svc.CreateRuleFromAction(context.Background(), uuid.New().String(), models.RuleSpec{}, "owner")
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestServiceRevokeRule(t *testing.T) {
	ctx := context.Background()
	svc, client := newServiceFixture(t)

	rule, err := svc.CreateRule(ctx, models.RuleSpec{ToolName: "bot_email_send"}, "owner")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeRule(ctx, rule.ID, "owner", "no longer needed"))

	reloaded, err := client.ApprovalRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)

	// Revoking twice is a no-op; an unknown ID is not.
	require.NoError(t, svc.RevokeRule(ctx, rule.ID, "owner", ""))
	assert.ErrorIs(t, svc.RevokeRule(ctx, uuid.New().String(), "owner", ""), ErrRuleNotFound)
}
