package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboxRecord holds the schema definition for the InboxRecord entity.
// One row per ingested external event; the (source_channel, source_message_id)
// unique index is the idempotency key that makes switchboard dispatch
// at-most-once under duplicate delivery.
type InboxRecord struct {
	ent.Schema
}

// Fields of the InboxRecord.
func (InboxRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("inbox_id").
			Unique().
			Immutable(),
		field.String("source_channel").
			Immutable(),
		field.String("source_message_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Normalized event payload"),
		field.Time("ingested_at").
			Default(time.Now).
			Immutable(),
		field.String("pipeline_request_id").
			Optional().
			Nillable().
			Comment("Links to the worker session that processed this event"),
	}
}

// Indexes of the InboxRecord.
func (InboxRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_channel", "source_message_id").
			Unique(),
	}
}
