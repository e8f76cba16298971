package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Service owns decision transitions and rule lifecycle. Both the tool surface
// and the dashboard mutate through it; neither writes actions or rules
// directly.
type Service struct {
	client    *ent.Client
	publisher *events.Publisher

	// sensitiveArgs mirrors the gate's module-declared sensitive argument
	// names, consulted when deriving rule constraints from a parked action.
	sensitiveArgs map[string][]string
}

// NewService creates the decision service. publisher may be nil.
func NewService(client *ent.Client, publisher *events.Publisher) *Service {
	return &Service{
		client:        client,
		publisher:     publisher,
		sensitiveArgs: make(map[string][]string),
	}
}

// DeclareSensitiveArgs records module-declared sensitive argument names for
// a tool, matching the gate's view.
func (s *Service) DeclareSensitiveArgs(toolName string, names []string) {
	s.sensitiveArgs[toolName] = names
}

// Approve moves a pending action to approved. The transition is a compare
// and swap on status; a repeated approve of an already approved or executed
// action returns the current row without error.
func (s *Service) Approve(ctx context.Context, actionID, actor, reason string) (*ent.PendingAction, error) {
	return s.decide(ctx, actionID, actor, reason, pendingaction.StatusApproved, events.EventApproved)
}

// Reject moves a pending action to rejected. Repeated rejects converge the
// same way approves do.
func (s *Service) Reject(ctx context.Context, actionID, actor, reason string) (*ent.PendingAction, error) {
	return s.decide(ctx, actionID, actor, reason, pendingaction.StatusRejected, events.EventRejected)
}

func (s *Service) decide(ctx context.Context, actionID, actor, reason string, target pendingaction.Status, eventType string) (*ent.PendingAction, error) {
	now := time.Now().UTC()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.PendingAction.Update().
		Where(
			pendingaction.IDEQ(actionID),
			pendingaction.StatusEQ(pendingaction.StatusPending),
			pendingaction.ExpiresAtGT(now),
		).
		SetStatus(target).
		SetDecidedBy(actor).
		SetDecidedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decide action %s: %w", actionID, err)
	}

	if n == 0 {
		// CAS miss. Converge on the current state rather than guessing who
		// won the race.
		_ = tx.Rollback()
		return s.resolveDecisionMiss(ctx, actionID, target, now)
	}

	if _, err := events.Append(ctx, tx.ApprovalEvent, events.Entry{
		Type:     eventType,
		ActionID: actionID,
		Actor:    actor,
		Reason:   reason,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decision for %s: %w", actionID, err)
	}

	if s.publisher != nil {
		s.publisher.NotifyApproval(ctx, eventType, actionID, "")
	}

	action, err := s.client.PendingAction.Get(ctx, actionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload action %s: %w", actionID, err)
	}
	slog.Info("Action decided",
		"action_id", actionID, "decision", string(target), "actor", actor)
	return action, nil
}

// resolveDecisionMiss classifies a failed decision CAS: already in the
// requested terminal state (idempotent success), conflicting terminal state,
// expired but unswept (lazily expired here), or missing.
func (s *Service) resolveDecisionMiss(ctx context.Context, actionID string, target pendingaction.Status, now time.Time) (*ent.PendingAction, error) {
	action, err := s.client.PendingAction.Get(ctx, actionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrActionNotFound
		}
		return nil, fmt.Errorf("failed to load action %s: %w", actionID, err)
	}

	switch action.Status {
	case target:
		return action, nil
	case pendingaction.StatusExecuted:
		// Approve of an executed action is still a success from the
		// caller's point of view.
		if target == pendingaction.StatusApproved {
			return action, nil
		}
		return action, ErrInvalidTransition
	case pendingaction.StatusExpired:
		// Already swept. Deciding an expired action reports the expired
		// state, not a generic conflict; the state never regresses.
		return action, ErrActionExpired
	case pendingaction.StatusPending:
		// Still pending, so the CAS failed the expiry guard. Expiry is
		// inclusive: expires_at equal to now is already expired.
		if !action.ExpiresAt.After(now) {
			if expired, err := s.expireOne(ctx, actionID, now); err == nil && expired != nil {
				action = expired
			}
			return action, ErrActionExpired
		}
		return action, ErrInvalidTransition
	default:
		return action, ErrInvalidTransition
	}
}

// BatchDecide applies one decision across many actions. Each ID is its own
// CAS transition; one failure never blocks the rest.
func (s *Service) BatchDecide(ctx context.Context, req models.BatchDecisionRequest) []models.BatchDecisionOutcome {
	out := make([]models.BatchDecisionOutcome, 0, len(req.ActionIDs))
	for _, id := range req.ActionIDs {
		var (
			action *ent.PendingAction
			err    error
		)
		switch req.Decision {
		case "approve":
			action, err = s.Approve(ctx, id, req.Actor, req.Reason)
		case "reject":
			action, err = s.Reject(ctx, id, req.Actor, req.Reason)
		default:
			err = fmt.Errorf("unknown decision %q", req.Decision)
		}

		outcome := models.BatchDecisionOutcome{ActionID: id}
		if err != nil {
			outcome.Error = err.Error()
		}
		if action != nil {
			outcome.Status = string(action.Status)
		}
		out = append(out, outcome)
	}
	return out
}

// ExpireStale sweeps pending actions whose expiry has passed. The boundary
// is inclusive. Returns the number of actions expired.
func (s *Service) ExpireStale(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	stale, err := s.client.PendingAction.Query().
		Where(
			pendingaction.StatusEQ(pendingaction.StatusPending),
			pendingaction.ExpiresAtLTE(now),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale actions: %w", err)
	}

	expired := 0
	for _, id := range stale {
		if action, err := s.expireOne(ctx, id, now); err != nil {
			slog.Warn("Failed to expire stale action", "action_id", id, "error", err)
		} else if action != nil {
			expired++
		}
	}
	if expired > 0 {
		slog.Info("Expired stale pending actions", "count", expired)
	}
	return expired, nil
}

// expireOne performs the pending→expired CAS for a single action. Returns
// (nil, nil) when another writer got there first.
func (s *Service) expireOne(ctx context.Context, actionID string, now time.Time) (*ent.PendingAction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.PendingAction.Update().
		Where(
			pendingaction.IDEQ(actionID),
			pendingaction.StatusEQ(pendingaction.StatusPending),
			pendingaction.ExpiresAtLTE(now),
		).
		SetStatus(pendingaction.StatusExpired).
		SetDecidedBy("system:expiry").
		SetDecidedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire action %s: %w", actionID, err)
	}
	if n == 0 {
		return nil, nil
	}

	if _, err := events.Append(ctx, tx.ApprovalEvent, events.Entry{
		Type:     events.EventExpired,
		ActionID: actionID,
		Actor:    "system:expiry",
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expiry for %s: %w", actionID, err)
	}

	if s.publisher != nil {
		s.publisher.NotifyApproval(ctx, events.EventExpired, actionID, "")
	}
	return s.client.PendingAction.Get(ctx, actionID)
}

// CreateRule creates a standing approval rule. High and critical tier rules
// must carry at least one concrete constraint and a scope bound.
func (s *Service) CreateRule(ctx context.Context, spec models.RuleSpec, actor string) (*ent.ApprovalRule, error) {
	if spec.ToolName == "" {
		return nil, fmt.Errorf("rule tool_name is required")
	}
	if spec.RiskTier == "" {
		spec.RiskTier = "medium"
	}
	if err := validateRuleInvariant(spec); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ruleID := uuid.New().String()
	builder := tx.ApprovalRule.Create().
		SetID(ruleID).
		SetToolName(spec.ToolName).
		SetArgConstraints(spec.ArgConstraints).
		SetDescription(spec.Description).
		SetActive(true).
		SetRiskTier(approvalrule.RiskTier(spec.RiskTier)).
		SetCreatedAt(time.Now().UTC())
	if spec.ExpiresAt != nil {
		builder.SetExpiresAt(*spec.ExpiresAt)
	}
	if spec.MaxUses != nil {
		builder.SetMaxUses(*spec.MaxUses)
	}
	if spec.CreatedFromActionID != "" {
		builder.SetCreatedFromActionID(spec.CreatedFromActionID)
	}
	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	if _, err := events.Append(ctx, tx.ApprovalEvent, events.Entry{
		Type:     events.EventRuleCreated,
		RuleID:   ruleID,
		ActionID: spec.CreatedFromActionID,
		Actor:    actor,
		Metadata: map[string]interface{}{"tool_name": spec.ToolName},
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rule: %w", err)
	}

	slog.Info("Approval rule created",
		"rule_id", ruleID, "tool_name", spec.ToolName, "actor", actor)
	return rule, nil
}

// CreateRuleFromAction derives a rule from a parked or decided action's
// stored args: sensitive argument names pin to exact values, everything else
// relaxes to any. Explicit constraints in overrides win.
func (s *Service) CreateRuleFromAction(ctx context.Context, actionID string, overrides models.RuleSpec, actor string) (*ent.ApprovalRule, error) {
	action, err := s.client.PendingAction.Get(ctx, actionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrActionNotFound
		}
		return nil, fmt.Errorf("failed to load action %s: %w", actionID, err)
	}

	derived := ConstraintsFromArgs(action.ToolArgs, s.sensitiveArgs[action.ToolName])
	for key, c := range overrides.ArgConstraints {
		derived[key] = c
	}

	spec := models.RuleSpec{
		ToolName:            action.ToolName,
		ArgConstraints:      derived,
		Description:         overrides.Description,
		ExpiresAt:           overrides.ExpiresAt,
		MaxUses:             overrides.MaxUses,
		RiskTier:            overrides.RiskTier,
		CreatedFromActionID: actionID,
	}
	if spec.RiskTier == "" {
		spec.RiskTier = string(action.RiskTier)
	}
	return s.CreateRule(ctx, spec, actor)
}

// RevokeRule deactivates a rule. Revoking an already-inactive rule is a
// no-op success.
func (s *Service) RevokeRule(ctx context.Context, ruleID, actor, reason string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.ApprovalRule.Update().
		Where(
			approvalrule.IDEQ(ruleID),
			approvalrule.ActiveEQ(true),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke rule %s: %w", ruleID, err)
	}
	if n == 0 {
		_ = tx.Rollback()
		exists, qerr := s.client.ApprovalRule.Query().Where(approvalrule.IDEQ(ruleID)).Exist(ctx)
		if qerr != nil {
			return fmt.Errorf("failed to check rule %s: %w", ruleID, qerr)
		}
		if !exists {
			return ErrRuleNotFound
		}
		return nil
	}

	if _, err := events.Append(ctx, tx.ApprovalEvent, events.Entry{
		Type:   events.EventRuleRevoked,
		RuleID: ruleID,
		Actor:  actor,
		Reason: reason,
	}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit revoke for %s: %w", ruleID, err)
	}

	slog.Info("Approval rule revoked", "rule_id", ruleID, "actor", actor)
	return nil
}

// GetAction loads one action by ID.
func (s *Service) GetAction(ctx context.Context, actionID string) (*ent.PendingAction, error) {
	action, err := s.client.PendingAction.Get(ctx, actionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrActionNotFound
		}
		return nil, fmt.Errorf("failed to load action %s: %w", actionID, err)
	}
	return action, nil
}
