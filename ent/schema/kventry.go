package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KVEntry holds the schema definition for the KVEntry entity.
// Opaque key/value store for scheduler bookkeeping and one-shot flags
// (e.g. "identity:unknown_notified:telegram:9001").
type KVEntry struct {
	ent.Schema
}

// Fields of the KVEntry.
func (KVEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.JSON("value", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
