package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/butlerhq/butlerd/pkg/models"
)

// ApprovalRule holds the schema definition for the ApprovalRule entity.
// A standing auto-approval pattern over (tool_name, arg_constraints).
//
// Invariant: rules with risk_tier high/critical must carry at least one
// exact or pattern constraint AND a bound (expires_at or max_uses). Enforced
// in pkg/approval before insert.
type ApprovalRule struct {
	ent.Schema
}

// Fields of the ApprovalRule.
func (ApprovalRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("arg_constraints", map[string]models.ArgConstraint{}).
			Optional().
			Comment("Empty map matches any invocation"),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("active").
			Default(true),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Int("max_uses").
			Optional().
			Nillable(),
		field.Int("use_count").
			Default(0),
		field.Enum("risk_tier").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.String("created_from_action_id").
			Optional().
			Nillable(),
	}
}

// Indexes of the ApprovalRule.
func (ApprovalRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tool_name", "active"),
	}
}
