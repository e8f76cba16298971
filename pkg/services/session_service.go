package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/ent/session"
	"github.com/butlerhq/butlerd/pkg/models"
)

// SessionService serves the dashboard's session reads.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// List returns a page of sessions, newest first, plus the total count.
func (s *SessionService) List(ctx context.Context, params models.ListParams) ([]*ent.Session, int, error) {
	query := s.client.Session.Query()

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	page, pageSize := normalizePage(params)
	sessions, err := query.
		Order(ent.Desc(session.FieldStartedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// Get loads one session.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return sess, nil
}

// TimelineEntry is one row of a session's chronological view: session
// boundaries, tool actions, and their audit events merged by time.
type TimelineEntry struct {
	At     time.Time              `json:"at"`
	Kind   string                 `json:"kind"`
	Detail map[string]interface{} `json:"detail,omitempty"`
}

// Timeline builds the chronological view of one session.
func (s *SessionService) Timeline(ctx context.Context, sessionID string) ([]TimelineEntry, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := []TimelineEntry{{
		At:   sess.StartedAt,
		Kind: "session_started",
		Detail: map[string]interface{}{
			"butler":       sess.Butler,
			"trigger_kind": string(sess.TriggerKind),
		},
	}}

	actions, err := s.client.PendingAction.Query().
		Where(pendingaction.SessionIDEQ(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session actions: %w", err)
	}

	actionIDs := make([]string, 0, len(actions))
	for _, a := range actions {
		actionIDs = append(actionIDs, a.ID)
		entries = append(entries, TimelineEntry{
			At:   a.RequestedAt,
			Kind: "action_requested",
			Detail: map[string]interface{}{
				"action_id": a.ID,
				"tool_name": a.ToolName,
				"status":    string(a.Status),
				"risk_tier": string(a.RiskTier),
			},
		})
	}

	if len(actionIDs) > 0 {
		evs, err := s.client.ApprovalEvent.Query().
			Where(approvalevent.ActionIDIn(actionIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load session events: %w", err)
		}
		for _, ev := range evs {
			detail := map[string]interface{}{"actor": ev.Actor}
			if ev.ActionID != nil {
				detail["action_id"] = *ev.ActionID
			}
			if ev.RuleID != nil {
				detail["rule_id"] = *ev.RuleID
			}
			if ev.Reason != "" {
				detail["reason"] = ev.Reason
			}
			entries = append(entries, TimelineEntry{
				At:     ev.OccurredAt,
				Kind:   string(ev.EventType),
				Detail: detail,
			})
		}
	}

	if sess.EndedAt != nil {
		detail := map[string]interface{}{}
		if sess.Cost != nil {
			detail["cost"] = *sess.Cost
		}
		if sess.Error != nil && *sess.Error != "" {
			detail["error"] = *sess.Error
		}
		entries = append(entries, TimelineEntry{
			At:     *sess.EndedAt,
			Kind:   "session_ended",
			Detail: detail,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	return entries, nil
}
