package services

import (
	"context"
	"fmt"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/models"
)

// ApprovalQueryService serves the dashboard's approval reads: the pending
// queue, the rule list, and the audit log.
type ApprovalQueryService struct {
	client *ent.Client
}

// NewApprovalQueryService creates an ApprovalQueryService.
func NewApprovalQueryService(client *ent.Client) *ApprovalQueryService {
	return &ApprovalQueryService{client: client}
}

// ListActions returns a filtered page of actions plus the total match count.
func (s *ApprovalQueryService) ListActions(ctx context.Context, filters models.ActionFilters, params models.ListParams) ([]*ent.PendingAction, int, error) {
	query := s.client.PendingAction.Query()

	if filters.Status != "" {
		status := pendingaction.Status(filters.Status)
		if err := pendingaction.StatusValidator(status); err != nil {
			return nil, 0, NewValidationError("status", fmt.Sprintf("invalid status %q", filters.Status))
		}
		query = query.Where(pendingaction.StatusEQ(status))
	}
	if filters.ToolName != "" {
		query = query.Where(pendingaction.ToolNameEQ(filters.ToolName))
	}
	if filters.SessionID != "" {
		query = query.Where(pendingaction.SessionIDEQ(filters.SessionID))
	}
	if filters.NeedsReconciliation != nil {
		query = query.Where(pendingaction.NeedsReconciliation(*filters.NeedsReconciliation))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count actions: %w", err)
	}

	page, pageSize := normalizePage(params)
	actions, err := query.
		Order(ent.Desc(pendingaction.FieldRequestedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list actions: %w", err)
	}
	return actions, total, nil
}

// GetAction loads one action.
func (s *ApprovalQueryService) GetAction(ctx context.Context, actionID string) (*ent.PendingAction, error) {
	action, err := s.client.PendingAction.Get(ctx, actionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load action %s: %w", actionID, err)
	}
	return action, nil
}

// ListRules returns rules, optionally restricted to active ones, newest
// first.
func (s *ApprovalQueryService) ListRules(ctx context.Context, activeOnly bool) ([]*ent.ApprovalRule, error) {
	query := s.client.ApprovalRule.Query()
	if activeOnly {
		query = query.Where(approvalrule.ActiveEQ(true))
	}
	rules, err := query.Order(ent.Desc(approvalrule.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// ListAudit returns a filtered page of audit events, oldest first, plus the
// total match count.
func (s *ApprovalQueryService) ListAudit(ctx context.Context, filters models.AuditFilters, params models.ListParams) ([]*ent.ApprovalEvent, int, error) {
	query := s.client.ApprovalEvent.Query()

	if filters.ActionID != "" {
		query = query.Where(approvalevent.ActionIDEQ(filters.ActionID))
	}
	if filters.RuleID != "" {
		query = query.Where(approvalevent.RuleIDEQ(filters.RuleID))
	}
	if filters.EventType != "" {
		eventType := approvalevent.EventType(filters.EventType)
		if err := approvalevent.EventTypeValidator(eventType); err != nil {
			return nil, 0, NewValidationError("event_type", fmt.Sprintf("invalid event type %q", filters.EventType))
		}
		query = query.Where(approvalevent.EventTypeEQ(eventType))
	}
	if filters.Since != nil {
		query = query.Where(approvalevent.OccurredAtGTE(*filters.Since))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit events: %w", err)
	}

	page, pageSize := normalizePage(params)
	evs, err := query.
		Order(ent.Asc(approvalevent.FieldOccurredAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit events: %w", err)
	}
	return evs, total, nil
}

func normalizePage(params models.ListParams) (page, pageSize int) {
	page = params.Page
	if page < 1 {
		page = 1
	}
	pageSize = params.PageSize
	if pageSize < 1 {
		pageSize = 25
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
