package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalEvent holds the schema definition for the ApprovalEvent entity.
// Append-only audit stream. All fields are immutable; on top of that, the
// migration installs a trigger that rejects UPDATE and DELETE at the schema
// level, so immutability does not rest on application discipline alone.
type ApprovalEvent struct {
	ent.Schema
}

// Fields of the ApprovalEvent.
func (ApprovalEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.Enum("event_type").
			Values(
				"action_queued",
				"auto_approved",
				"approved",
				"rejected",
				"expired",
				"execution_succeeded",
				"execution_failed",
				"rule_created",
				"rule_revoked",
			).
			Immutable(),
		field.String("action_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("rule_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("actor").
			Immutable(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
		field.Text("reason").
			Optional().
			Immutable(),
		field.JSON("payload_metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the ApprovalEvent.
func (ApprovalEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action_id"),
		index.Fields("rule_id"),
		index.Fields("event_type"),
		index.Fields("occurred_at"),
	}
}
