package approval

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/identity"
	"github.com/butlerhq/butlerd/pkg/masking"
	"github.com/butlerhq/butlerd/pkg/models"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

type invocation struct {
	tool string
	args map[string]interface{}
}

// stubInvoker records invocations and dispatches to per-tool stub handlers.
type stubInvoker struct {
	mu       sync.Mutex
	handlers map[string]func(args map[string]interface{}) (interface{}, error)
	calls    []invocation
}

func newStubInvoker() *stubInvoker {
	return &stubInvoker{handlers: make(map[string]func(args map[string]interface{}) (interface{}, error))}
}

func (s *stubInvoker) Invoke(_ context.Context, toolName string, args map[string]interface{}) (interface{}, error) {
	s.mu.Lock()
	s.calls = append(s.calls, invocation{tool: toolName, args: args})
	h := s.handlers[toolName]
	s.mu.Unlock()
	if h == nil {
		return nil, errors.New("no handler registered")
	}
	return h(args)
}

func (s *stubInvoker) HasHandler(toolName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.handlers[toolName]
	return ok
}

func (s *stubInvoker) RequiresApproval(toolName string) bool {
	return models.ToolDescriptor{Name: toolName}.EffectiveApprovalDefault() == models.ApprovalAlways
}

func (s *stubInvoker) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubInvoker) lastCall(t *testing.T) invocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.calls)
	return s.calls[len(s.calls)-1]
}

type gateFixture struct {
	gate     *Gate
	service  *Service
	client   *ent.Client
	invoker  *stubInvoker
	resolver *identity.Resolver
}

func newGateFixture(t *testing.T) *gateFixture {
	db := dbtest.NewTestClient(t)
	invoker := newStubInvoker()
	cfg := &config.ApprovalsConfig{
		DefaultExpiryHours: 48,
		DefaultRiskTier:    "medium",
		GatedTools: map[string]config.GatedToolConfig{
			"bot_email_send": {},
		},
	}
	resolver := identity.NewResolver(db.Client)
	masker := masking.NewService(nil)
	return &gateFixture{
		gate:     NewGate(db.Client, cfg, resolver, invoker, masker, nil, nil),
		service:  NewService(db.Client, nil),
		client:   db.Client,
		invoker:  invoker,
		resolver: resolver,
	}
}

func TestGateUngatedPassthrough(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	fx.invoker.handlers["fetch_weather"] = func(args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"temp_c": 21.5}, nil
	}

	res, err := fx.gate.Intercept(ctx, "fetch_weather", map[string]interface{}{"city": "Lisbon"}, "sess-1", "checking weather")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusOK, res.Status)
	assert.Equal(t, map[string]interface{}{"temp_c": 21.5}, res.Data)
	assert.Empty(t, res.ActionID)

	// Ungated calls never touch the actions table.
	count, err := fx.client.PendingAction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, fx.invoker.callCount())
}

func TestGateUngatedHandlerError(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	fx.invoker.handlers["fetch_weather"] = func(args map[string]interface{}) (interface{}, error) {
		return nil, errors.New("upstream timeout")
	}

	res, err := fx.gate.Intercept(ctx, "fetch_weather", nil, "sess-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusError, res.Status)
	assert.Equal(t, "ExecutionError", res.ErrorType)
	assert.Contains(t, res.Error, "upstream timeout")
}

func TestGateParksWhenNoRuleMatches(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	fx.invoker.handlers["bot_email_send"] = func(args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"sent": true}, nil
	}

	args := map[string]interface{}{
		"to":       "stranger@example.com",
		"body":     "quarterly numbers attached",
		"password": "hunter2",
	}
	res, err := fx.gate.Intercept(ctx, "bot_email_send", args, "sess-1", "sending report")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusPendingApproval, res.Status)
	require.NotEmpty(t, res.ActionID)
	assert.Contains(t, res.Message, "requires approval")

	// Parked calls never execute.
	assert.Zero(t, fx.invoker.callCount())

	action, err := fx.client.PendingAction.Get(ctx, res.ActionID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusPending, action.Status)
	assert.Equal(t, "bot_email_send", action.ToolName)
	assert.Equal(t, "sess-1", action.SessionID)
	assert.Nil(t, action.DispatchEpoch)
	assert.True(t, action.ExpiresAt.After(action.RequestedAt))

	// Persisted args are redacted; the address survives, the credential
	// does not.
	assert.Equal(t, "stranger@example.com", action.ToolArgs["to"])
	assert.Equal(t, masking.MaskedValue, action.ToolArgs["password"])

	queued, err := fx.client.ApprovalEvent.Query().
		Where(
			approvalevent.ActionIDEQ(res.ActionID),
			approvalevent.EventTypeEQ(approvalevent.EventTypeActionQueued),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, queued)
}

func TestGateOwnerAutoApprove(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	_, err := fx.resolver.BootstrapOwner(ctx, "Avery", []identity.ChannelSpec{
		{Type: "email", Value: "avery@example.com", Primary: true},
	})
	require.NoError(t, err)

	var rawSeen map[string]interface{}
	fx.invoker.handlers["bot_email_send"] = func(args map[string]interface{}) (interface{}, error) {
		rawSeen = args
		return map[string]interface{}{"message_id": "m-1"}, nil
	}

	args := map[string]interface{}{
		"to":       "avery@example.com",
		"body":     "done for today",
		"password": "hunter2",
	}
	res, err := fx.gate.Intercept(ctx, "bot_email_send", args, "sess-1", "status update")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusOK, res.Status)
	assert.Equal(t, map[string]interface{}{"message_id": "m-1"}, res.Data)
	require.NotEmpty(t, res.ActionID)
	assert.Empty(t, res.RuleID)

	// The handler sees the raw credential; the row stores the redacted copy.
	assert.Equal(t, "hunter2", rawSeen["password"])

	action, err := fx.client.PendingAction.Get(ctx, res.ActionID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, action.Status)
	require.NotNil(t, action.DecidedBy)
	assert.Equal(t, "owner", *action.DecidedBy)
	assert.Equal(t, masking.MaskedValue, action.ToolArgs["password"])
	require.NotNil(t, action.ExecutionResult)
	assert.True(t, action.ExecutionResult.Success)

	// Inline execution stamps the epoch so the pool never claims the row.
	require.NotNil(t, action.DispatchEpoch)
	assert.Equal(t, BootEpoch(), *action.DispatchEpoch)

	auto, err := fx.client.ApprovalEvent.Query().
		Where(
			approvalevent.ActionIDEQ(res.ActionID),
			approvalevent.EventTypeEQ(approvalevent.EventTypeAutoApproved),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, auto)
}

func TestGateRuleAutoApprove(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	fx.invoker.handlers["bot_email_send"] = func(args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"sent": true}, nil
	}

	rule, err := fx.service.CreateRule(ctx, models.RuleSpec{
		ToolName: "bot_email_send",
		ArgConstraints: map[string]models.ArgConstraint{
			"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
		},
		Description: "weekly ops report",
	}, "owner")
	require.NoError(t, err)

	res, err := fx.gate.Intercept(ctx, "bot_email_send",
		map[string]interface{}{"to": "ops@example.com", "body": "report"}, "sess-1", "weekly report")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusOK, res.Status)
	assert.Equal(t, rule.ID, res.RuleID)

	action, err := fx.client.PendingAction.Get(ctx, res.ActionID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, action.Status)
	require.NotNil(t, action.DecidedBy)
	assert.Equal(t, "rule:"+rule.ID, *action.DecidedBy)
	require.NotNil(t, action.RuleID)
	assert.Equal(t, rule.ID, *action.RuleID)

	reloaded, err := fx.client.ApprovalRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.UseCount)
}

func TestGateExhaustedRuleParks(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	fx.invoker.handlers["bot_email_send"] = func(args map[string]interface{}) (interface{}, error) {
		return nil, nil
	}

	one := 1
	_, err := fx.service.CreateRule(ctx, models.RuleSpec{
		ToolName: "bot_email_send",
		ArgConstraints: map[string]models.ArgConstraint{
			"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
		},
		MaxUses: &one,
	}, "owner")
	require.NoError(t, err)

	args := map[string]interface{}{"to": "ops@example.com"}
	first, err := fx.gate.Intercept(ctx, "bot_email_send", args, "sess-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusOK, first.Status)

	// The single use is spent; the next call parks.
	second, err := fx.gate.Intercept(ctx, "bot_email_send", args, "sess-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusPendingApproval, second.Status)
}

func TestGateRuleFailureRecordedAsExecuted(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	fx.invoker.handlers["bot_email_send"] = func(args map[string]interface{}) (interface{}, error) {
		return nil, errors.New("smtp 550")
	}

	_, err := fx.service.CreateRule(ctx, models.RuleSpec{
		ToolName: "bot_email_send",
		ArgConstraints: map[string]models.ArgConstraint{
			"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
		},
	}, "owner")
	require.NoError(t, err)

	res, err := fx.gate.Intercept(ctx, "bot_email_send",
		map[string]interface{}{"to": "ops@example.com"}, "sess-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusError, res.Status)
	assert.Contains(t, res.Error, "smtp 550")

	// Failures are terminal, never retried.
	action, err := fx.client.PendingAction.Get(ctx, res.ActionID)
	require.NoError(t, err)
	assert.Equal(t, pendingaction.StatusExecuted, action.Status)
	require.NotNil(t, action.ExecutionResult)
	assert.False(t, action.ExecutionResult.Success)

	failed, err := fx.client.ApprovalEvent.Query().
		Where(
			approvalevent.ActionIDEQ(res.ActionID),
			approvalevent.EventTypeEQ(approvalevent.EventTypeExecutionFailed),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
}

func TestGateDisabledBlocksApprovalRequiredTool(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	disabled := false
	fx.gate.cfg.Enabled = &disabled
	fx.invoker.handlers["user_telegram_send"] = func(map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"message_id": "m-1"}, nil
	}

	res, err := fx.gate.Intercept(ctx, "user_telegram_send",
		map[string]interface{}{"to": "mom", "body": "on my way"}, "sess-1", "replying to mom")
	require.NoError(t, err)

	// The handler must not run and nothing can be parked: the worker gets
	// the unavailable envelope with guidance instead.
	assert.Equal(t, models.ToolStatusApprovalUnavailable, res.Status)
	assert.NotEmpty(t, res.Guidance)
	assert.Zero(t, fx.invoker.callCount())

	count, err := fx.client.PendingAction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGateDisabledForwardsOtherTools(t *testing.T) {
	ctx := context.Background()
	fx := newGateFixture(t)
	disabled := false
	fx.gate.cfg.Enabled = &disabled
	fx.invoker.handlers["bot_email_send"] = func(map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"message_id": "m-2"}, nil
	}

	// bot_email_send is in gated_tools, but with the module off and no
	// always-approval requirement it forwards ungated.
	res, err := fx.gate.Intercept(ctx, "bot_email_send",
		map[string]interface{}{"to": "travel@example.com"}, "sess-1", "booking confirmation")
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusOK, res.Status)
	assert.Equal(t, 1, fx.invoker.callCount())
}
