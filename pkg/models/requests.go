package models

import "time"

// DecisionRequest is an approve/reject call against one pending action.
type DecisionRequest struct {
	Decision string `json:"decision"` // "approve" | "reject"
	Actor    string `json:"actor"`
	Reason   string `json:"reason,omitempty"`
}

// BatchDecisionRequest applies one decision to many actions. Sugar over the
// per-action CAS transition; each ID gets its own outcome.
type BatchDecisionRequest struct {
	ActionIDs []string `json:"action_ids"`
	Decision  string   `json:"decision"`
	Actor     string   `json:"actor"`
	Reason    string   `json:"reason,omitempty"`
}

// BatchDecisionOutcome reports the per-action result of a batch decision.
type BatchDecisionOutcome struct {
	ActionID string `json:"action_id"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// CreateTaskRequest creates a runtime scheduled task.
type CreateTaskRequest struct {
	Name    string     `json:"name"`
	Cron    string     `json:"cron,omitempty"`
	StartAt *time.Time `json:"start_at,omitempty"`
	Prompt  string     `json:"prompt"`
}

// UpdateTaskRequest mutates a scheduled task. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Cron    *string    `json:"cron,omitempty"`
	StartAt *time.Time `json:"start_at,omitempty"`
	Prompt  *string    `json:"prompt,omitempty"`
	Enabled *bool      `json:"enabled,omitempty"`
}

// ListParams is the shared pagination/sort shape for dashboard list endpoints.
type ListParams struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// ActionFilters narrows pending-action queries.
type ActionFilters struct {
	Status              string
	ToolName            string
	SessionID           string
	NeedsReconciliation *bool
}

// AuditFilters narrows audit event queries.
type AuditFilters struct {
	ActionID  string
	RuleID    string
	EventType string
	Since     *time.Time
}
