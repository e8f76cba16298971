package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContactChannel holds the schema definition for the ContactChannel entity.
// A (channel_type, channel_value) pair is globally unique.
type ContactChannel struct {
	ent.Schema
}

// Fields of the ContactChannel.
func (ContactChannel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("contact_id").
			Immutable(),
		field.String("channel_type").
			Comment("e.g. 'telegram', 'email', 'signal'"),
		field.String("channel_value"),
		field.Bool("is_primary").
			Default(false),
		field.Bool("secured").
			Default(false).
			Comment("Credential material; excluded from default read paths"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContactChannel.
func (ContactChannel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("channels").
			Field("contact_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ContactChannel.
func (ContactChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_type", "channel_value").
			Unique(),
		index.Fields("contact_id"),
	}
}
