package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"
)

// NOTIFY channels. The dashboard listener subscribes to both.
const (
	// ApprovalsChannel carries approval lifecycle pushes (queued/decided).
	ApprovalsChannel = "butler_approvals"
	// SessionsChannel carries session start/finish pushes.
	SessionsChannel = "butler_sessions"
)

// Publisher broadcasts lightweight change notifications over Postgres NOTIFY
// so the dashboard can refresh without polling. Durable state lives in the
// audit table; NOTIFY delivery is best-effort by design.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the shared connection pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// notification is the wire shape sent over NOTIFY.
type notification struct {
	Kind       string    `json:"kind"`
	ActionID   string    `json:"action_id,omitempty"`
	RuleID     string    `json:"rule_id,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NotifyApproval broadcasts an approval lifecycle change.
func (p *Publisher) NotifyApproval(ctx context.Context, kind, actionID, ruleID string) {
	p.notify(ctx, ApprovalsChannel, notification{
		Kind:       kind,
		ActionID:   actionID,
		RuleID:     ruleID,
		OccurredAt: time.Now().UTC(),
	})
}

// NotifySession broadcasts a session lifecycle change.
func (p *Publisher) NotifySession(ctx context.Context, kind, sessionID string) {
	p.notify(ctx, SessionsChannel, notification{
		Kind:       kind,
		SessionID:  sessionID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) notify(ctx context.Context, channel string, n notification) {
	if p == nil || p.db == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		slog.Warn("Failed to marshal notification", "kind", n.Kind, "error", err)
		return
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payload)); err != nil {
		slog.Warn("Failed to publish notification",
			"channel", channel, "kind", n.Kind, "error", err)
	}
}
