package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// One row per worker invocation, regardless of trigger kind.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("butler").
			Immutable(),
		field.Enum("trigger_kind").
			Values("ingest", "schedule", "manual").
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Text("input_prompt"),
		field.Text("output_summary").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Float("cost").
			Optional().
			Nillable(),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler", "started_at"),
		index.Fields("trigger_kind"),
	}
}
