package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledTask holds the schema definition for the ScheduledTask entity.
// cron is a 5-field expression, or empty for a one-shot task with start_at.
// toml-sourced tasks are reconciled at boot: created if missing, disabled if
// removed from config, never deleted.
type ScheduledTask struct {
	ent.Schema
}

// Fields of the ScheduledTask.
func (ScheduledTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("cron").
			Optional().
			Comment("5-field cron expression; empty for one-shot"),
		field.Time("start_at").
			Optional().
			Nillable().
			Comment("One-shot fire time"),
		field.Text("prompt"),
		field.Enum("source").
			Values("toml", "runtime"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Text("last_result").
			Optional().
			Nillable(),
		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScheduledTask.
func (ScheduledTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_run_at"),
	}
}
