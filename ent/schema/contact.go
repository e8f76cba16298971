package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Contact holds the schema definition for the Contact entity.
// Contacts are never deleted, only re-roled. Exactly one contact carries the
// "owner" role after bootstrap.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contact_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.JSON("roles", []string{}).
			Optional().
			Comment("Role tags; the 'owner' sentinel appears at most once database-wide"),
		field.String("entity_id").
			Optional().
			Nillable().
			Comment("Soft reference to a memory entity (no cross-database FK)"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("channels", ContactChannel.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
