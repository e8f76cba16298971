// Package events owns the append-only approval audit stream and its
// NOTIFY-based fanout to the dashboard.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalevent"
)

// Audit event types. Mirrors the approval_events.event_type check constraint.
const (
	EventActionQueued       = "action_queued"
	EventAutoApproved       = "auto_approved"
	EventApproved           = "approved"
	EventRejected           = "rejected"
	EventExpired            = "expired"
	EventExecutionSucceeded = "execution_succeeded"
	EventExecutionFailed    = "execution_failed"
	EventRuleCreated        = "rule_created"
	EventRuleRevoked        = "rule_revoked"
)

// Entry is one audit event to append. ActionID/RuleID are optional depending
// on the event type.
type Entry struct {
	Type     string
	ActionID string
	RuleID   string
	Actor    string
	Reason   string
	Metadata map[string]interface{}
}

// Append inserts one audit event using the given ApprovalEvent mutation
// client. Callers emitting inside a transaction pass tx.ApprovalEvent so the
// event commits (or rolls back) with the state transition it describes.
func Append(ctx context.Context, ec *ent.ApprovalEventClient, e Entry) (*ent.ApprovalEvent, error) {
	builder := ec.Create().
		SetID(uuid.New().String()).
		SetEventType(approvalevent.EventType(e.Type)).
		SetActor(e.Actor).
		SetOccurredAt(time.Now().UTC())

	if e.ActionID != "" {
		builder.SetActionID(e.ActionID)
	}
	if e.RuleID != "" {
		builder.SetRuleID(e.RuleID)
	}
	if e.Reason != "" {
		builder.SetReason(e.Reason)
	}
	if e.Metadata != nil {
		builder.SetPayloadMetadata(e.Metadata)
	}

	ev, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit event %s: %w", e.Type, err)
	}
	return ev, nil
}
