package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/butlerhq/butlerd/pkg/models"
)

// PendingAction holds the schema definition for the PendingAction entity.
// An intercepted gated tool call awaiting (or past) a human decision.
//
// Valid transitions: pending → {approved, rejected, expired}; approved → executed.
// rejected, expired and executed are terminal. Transitions are enforced with
// CAS-on-current-status updates, never unconditional writes.
type PendingAction struct {
	ent.Schema
}

// Fields of the PendingAction.
func (PendingAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("tool_args", map[string]interface{}{}).
			Comment("Redacted before persistence — see pkg/masking"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired", "executed").
			Default("pending"),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Comment("Absolute deadline; expires_at <= now counts as expired"),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.JSON("execution_result", &models.ExecutionResult{}).
			Optional(),
		field.String("rule_id").
			Optional().
			Nillable().
			Comment("Set when auto-approved by a standing rule"),
		field.Text("agent_summary").
			Optional(),
		field.String("session_id").
			Optional(),
		field.Enum("risk_tier").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Bool("needs_reconciliation").
			Default(false).
			Comment("Approved but execution completion unobserved (daemon crash); operator attention required"),
		field.String("dispatch_epoch").
			Optional().
			Nillable().
			Comment("Boot epoch of the pod that enqueued execution"),
	}
}

// Indexes of the PendingAction.
func (PendingAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "expires_at"),
		index.Fields("tool_name"),
		index.Fields("session_id"),
	}
}
