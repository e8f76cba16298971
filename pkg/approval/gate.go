// Package approval implements the execution-control gate: interception of
// gated tool calls, standing-rule evaluation, parking, decision transitions,
// and exactly-once execution of approved actions.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/identity"
	"github.com/butlerhq/butlerd/pkg/masking"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Invoker runs the registered handler behind a tool name. Implemented by the
// tool registry; nil handlers are tolerated (manual-approval fallback).
type Invoker interface {
	Invoke(ctx context.Context, toolName string, args map[string]interface{}) (interface{}, error)
	HasHandler(toolName string) bool
	RequiresApproval(toolName string) bool
}

// Gate intercepts gated tool calls before their handlers run.
type Gate struct {
	client    *ent.Client
	cfg       *config.ApprovalsConfig
	resolver  *identity.Resolver
	invoker   Invoker
	masker    *masking.Service
	publisher *events.Publisher
	notifier  *events.Notifier

	// sensitiveArgs holds module-declared sensitive argument names per tool,
	// used by rule-from-action constraint building.
	sensitiveArgs map[string][]string
}

// NewGate creates a Gate. publisher and notifier may be nil (no dashboard
// push / no owner notifications — used in tests).
func NewGate(
	client *ent.Client,
	cfg *config.ApprovalsConfig,
	resolver *identity.Resolver,
	invoker Invoker,
	masker *masking.Service,
	publisher *events.Publisher,
	notifier *events.Notifier,
) *Gate {
	return &Gate{
		client:        client,
		cfg:           cfg,
		resolver:      resolver,
		invoker:       invoker,
		masker:        masker,
		publisher:     publisher,
		notifier:      notifier,
		sensitiveArgs: make(map[string][]string),
	}
}

// DeclareSensitiveArgs records module-declared sensitive argument names for
// a tool. Called at module load.
func (g *Gate) DeclareSensitiveArgs(toolName string, names []string) {
	g.sensitiveArgs[toolName] = names
}

// Intercept is the gate's entry point. For ungated tools the call is
// forwarded unchanged; for gated tools the decision procedure runs:
// owner → auto-approve; matching standing rule → auto-approve; else park.
func (g *Gate) Intercept(ctx context.Context, toolName string, args map[string]interface{}, sessionID, agentSummary string) (*models.ToolResult, error) {
	if !g.cfg.IsEnabled() {
		// Tools whose approval default is "always" must never run ungated.
		// With the module off there is nowhere to park them.
		if g.invoker.RequiresApproval(toolName) {
			return models.UnavailableResult(toolName), nil
		}
		return g.forward(ctx, toolName, args)
	}
	if !g.cfg.IsGated(toolName) {
		return g.forward(ctx, toolName, args)
	}

	now := time.Now().UTC()

	// Owner is pre-trusted: auto-approve without consulting rules.
	target := g.resolveTarget(ctx, args)
	if target != nil && target.Kind == identity.KindOwner {
		return g.autoApprove(ctx, toolName, args, sessionID, agentSummary, nil, "owner")
	}

	rules, err := g.client.ApprovalRule.Query().
		Where(
			approvalrule.ToolNameEQ(toolName),
			approvalrule.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules for %s: %w", toolName, err)
	}

	candidates := candidateRules(rules, args, now)
	if len(candidates) > 0 {
		winner := candidates[0]
		return g.autoApprove(ctx, toolName, args, sessionID, agentSummary, winner, "rule:"+winner.ID)
	}

	return g.park(ctx, toolName, args, sessionID, agentSummary, now)
}

// forward invokes an ungated tool directly.
func (g *Gate) forward(ctx context.Context, toolName string, args map[string]interface{}) (*models.ToolResult, error) {
	result, err := g.invoker.Invoke(ctx, toolName, args)
	if err != nil {
		return models.ErrorResult("ExecutionError", g.masker.MaskError(err)), nil
	}
	return models.OKResult(coerceResult(result)), nil
}

// resolveTarget computes the target contact from args, inspecting them in a
// fixed order: contact_id → channel+recipient → chat_id → to.
// Returns nil when no addressing argument is present or resolution fails
// (read-path failures fail open into the rule scan).
func (g *Gate) resolveTarget(ctx context.Context, args map[string]interface{}) *identity.Resolution {
	if v, ok := args["contact_id"].(string); ok && v != "" {
		if _, err := uuid.Parse(v); err == nil {
			if res, err := g.resolver.ResolveContactID(ctx, v); err == nil {
				return res
			} else if !errors.Is(err, identity.ErrUnknownChannel) {
				slog.Warn("Target contact lookup failed, continuing unresolved", "error", err)
			}
			return nil
		}
	}
	if ch, ok := args["channel"].(string); ok && ch != "" {
		if rcpt, ok := args["recipient"].(string); ok && rcpt != "" {
			return g.resolveChannel(ctx, ch, rcpt)
		}
	}
	if v, ok := args["chat_id"]; ok {
		return g.resolveChannel(ctx, "telegram", argString(v))
	}
	if v, ok := args["to"].(string); ok && v != "" {
		return g.resolveChannel(ctx, "email", v)
	}
	return nil
}

func (g *Gate) resolveChannel(ctx context.Context, channelType, channelValue string) *identity.Resolution {
	res, err := g.resolver.Resolve(ctx, channelType, channelValue)
	if err != nil {
		if !errors.Is(err, identity.ErrUnknownChannel) {
			slog.Warn("Target channel lookup failed, continuing unresolved",
				"channel_type", channelType, "error", err)
		}
		return nil
	}
	return res
}

// autoApprove creates an already-approved action, executes it inline with
// the raw (unredacted) in-memory args, and persists the outcome. The rule
// counter update, status transition, and execution event share one
// transaction.
func (g *Gate) autoApprove(ctx context.Context, toolName string, args map[string]interface{}, sessionID, agentSummary string, rule *ent.ApprovalRule, actor string) (*models.ToolResult, error) {
	now := time.Now().UTC()
	actionID := uuid.New().String()

	tx, err := g.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.PendingAction.Create().
		SetID(actionID).
		SetToolName(toolName).
		SetToolArgs(g.masker.MaskArgs(args)).
		SetStatus(pendingaction.StatusApproved).
		SetRequestedAt(now).
		SetExpiresAt(now.Add(g.cfg.ExpiryFor(toolName))).
		SetDecidedBy(actor).
		SetDecidedAt(now).
		SetRiskTier(pendingaction.RiskTier(g.cfg.RiskTierFor(toolName))).
		SetAgentSummary(g.masker.MaskString(agentSummary)).
		SetSessionID(sessionID).
		// Stamp the dispatch epoch so the executor pool never claims an
		// action the gate is about to run inline.
		SetDispatchEpoch(BootEpoch())
	if rule != nil {
		builder.SetRuleID(rule.ID)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create auto-approved action: %w", err)
	}

	ruleID := ""
	if rule != nil {
		ruleID = rule.ID
	}
	if _, err := events.Append(ctx, tx.ApprovalEvent, events.Entry{
		Type:     events.EventAutoApproved,
		ActionID: actionID,
		RuleID:   ruleID,
		Actor:    actor,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit auto-approval: %w", err)
	}

	// Execute inline with the raw args; the persisted copy is redacted.
	exec := NewExecutor(g.client, g.invoker, g.masker)
	res, err := exec.Run(ctx, actionID, toolName, args, ruleID)
	if err != nil {
		return nil, err
	}

	if g.publisher != nil {
		g.publisher.NotifyApproval(ctx, "auto_approved", actionID, ruleID)
	}

	if !res.Success {
		return &models.ToolResult{
			Status:    models.ToolStatusError,
			Error:     res.Error,
			ErrorType: "ExecutionError",
			ActionID:  actionID,
			RuleID:    ruleID,
		}, nil
	}

	data := coerceResult(res.Result)
	return &models.ToolResult{
		Status:   models.ToolStatusOK,
		Data:     data,
		ActionID: actionID,
		RuleID:   ruleID,
	}, nil
}

// park inserts a pending action and returns the stable placeholder to the
// caller without executing.
func (g *Gate) park(ctx context.Context, toolName string, args map[string]interface{}, sessionID, agentSummary string, now time.Time) (*models.ToolResult, error) {
	actionID := uuid.New().String()
	expiresAt := now.Add(g.cfg.ExpiryFor(toolName))

	tx, err := g.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.PendingAction.Create().
		SetID(actionID).
		SetToolName(toolName).
		SetToolArgs(g.masker.MaskArgs(args)).
		SetStatus(pendingaction.StatusPending).
		SetRequestedAt(now).
		SetExpiresAt(expiresAt).
		SetRiskTier(pendingaction.RiskTier(g.cfg.RiskTierFor(toolName))).
		SetAgentSummary(g.masker.MaskString(agentSummary)).
		SetSessionID(sessionID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to park action: %w", err)
	}

	if _, err := events.Append(ctx, tx.ApprovalEvent, events.Entry{
		Type:     events.EventActionQueued,
		ActionID: actionID,
		Actor:    "gate",
		Metadata: map[string]interface{}{"tool_name": toolName},
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit parked action: %w", err)
	}

	slog.Info("Tool call parked for approval",
		"action_id", actionID, "tool_name", toolName, "expires_at", expiresAt)

	if g.notifier != nil {
		g.notifier.PendingApproval(actionID, toolName, g.masker.MaskString(agentSummary))
	}
	if g.publisher != nil {
		g.publisher.NotifyApproval(ctx, "action_queued", actionID, "")
	}

	return &models.ToolResult{
		Status:   models.ToolStatusPendingApproval,
		ActionID: actionID,
		Message:  fmt.Sprintf("Call to %s requires approval; parked as %s (expires %s)", toolName, actionID, expiresAt.Format(time.RFC3339)),
	}, nil
}

// coerceResult normalizes a handler return value into an object payload.
// Non-object values become {"value": …} per the executor contract.
func coerceResult(result interface{}) map[string]interface{} {
	switch v := result.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return v
	default:
		return map[string]interface{}{"value": v}
	}
}
