// Code generated by ent, DO NOT EDIT.

package contactchannel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContainsFold(FieldID, id))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldContactID, v))
}

// ChannelType applies equality check predicate on the "channel_type" field. It's identical to ChannelTypeEQ.
func ChannelType(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldChannelType, v))
}

// ChannelValue applies equality check predicate on the "channel_value" field. It's identical to ChannelValueEQ.
func ChannelValue(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldChannelValue, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldIsPrimary, v))
}

// Secured applies equality check predicate on the "secured" field. It's identical to SecuredEQ.
func Secured(v bool) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldSecured, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldCreatedAt, v))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDGT applies the GT predicate on the "contact_id" field.
func ContactIDGT(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGT(FieldContactID, v))
}

// ContactIDGTE applies the GTE predicate on the "contact_id" field.
func ContactIDGTE(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGTE(FieldContactID, v))
}

// ContactIDLT applies the LT predicate on the "contact_id" field.
func ContactIDLT(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLT(FieldContactID, v))
}

// ContactIDLTE applies the LTE predicate on the "contact_id" field.
func ContactIDLTE(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLTE(FieldContactID, v))
}

// ContactIDContains applies the Contains predicate on the "contact_id" field.
func ContactIDContains(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContains(FieldContactID, v))
}

// ContactIDHasPrefix applies the HasPrefix predicate on the "contact_id" field.
func ContactIDHasPrefix(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldHasPrefix(FieldContactID, v))
}

// ContactIDHasSuffix applies the HasSuffix predicate on the "contact_id" field.
func ContactIDHasSuffix(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldHasSuffix(FieldContactID, v))
}

// ContactIDEqualFold applies the EqualFold predicate on the "contact_id" field.
func ContactIDEqualFold(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEqualFold(FieldContactID, v))
}

// ContactIDContainsFold applies the ContainsFold predicate on the "contact_id" field.
func ContactIDContainsFold(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContainsFold(FieldContactID, v))
}

// ChannelTypeEQ applies the EQ predicate on the "channel_type" field.
func ChannelTypeEQ(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldChannelType, v))
}

// ChannelTypeNEQ applies the NEQ predicate on the "channel_type" field.
func ChannelTypeNEQ(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldChannelType, v))
}

// ChannelTypeIn applies the In predicate on the "channel_type" field.
func ChannelTypeIn(vs ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldIn(FieldChannelType, vs...))
}

// ChannelTypeNotIn applies the NotIn predicate on the "channel_type" field.
func ChannelTypeNotIn(vs ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNotIn(FieldChannelType, vs...))
}

// ChannelTypeGT applies the GT predicate on the "channel_type" field.
func ChannelTypeGT(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGT(FieldChannelType, v))
}

// ChannelTypeGTE applies the GTE predicate on the "channel_type" field.
func ChannelTypeGTE(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGTE(FieldChannelType, v))
}

// ChannelTypeLT applies the LT predicate on the "channel_type" field.
func ChannelTypeLT(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLT(FieldChannelType, v))
}

// ChannelTypeLTE applies the LTE predicate on the "channel_type" field.
func ChannelTypeLTE(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLTE(FieldChannelType, v))
}

// ChannelTypeContains applies the Contains predicate on the "channel_type" field.
func ChannelTypeContains(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContains(FieldChannelType, v))
}

// ChannelTypeHasPrefix applies the HasPrefix predicate on the "channel_type" field.
func ChannelTypeHasPrefix(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldHasPrefix(FieldChannelType, v))
}

// ChannelTypeHasSuffix applies the HasSuffix predicate on the "channel_type" field.
func ChannelTypeHasSuffix(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldHasSuffix(FieldChannelType, v))
}

// ChannelTypeEqualFold applies the EqualFold predicate on the "channel_type" field.
func ChannelTypeEqualFold(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEqualFold(FieldChannelType, v))
}

// ChannelTypeContainsFold applies the ContainsFold predicate on the "channel_type" field.
func ChannelTypeContainsFold(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContainsFold(FieldChannelType, v))
}

// ChannelValueEQ applies the EQ predicate on the "channel_value" field.
func ChannelValueEQ(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldChannelValue, v))
}

// ChannelValueNEQ applies the NEQ predicate on the "channel_value" field.
func ChannelValueNEQ(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldChannelValue, v))
}

// ChannelValueIn applies the In predicate on the "channel_value" field.
func ChannelValueIn(vs ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldIn(FieldChannelValue, vs...))
}

// ChannelValueNotIn applies the NotIn predicate on the "channel_value" field.
func ChannelValueNotIn(vs ...string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNotIn(FieldChannelValue, vs...))
}

// ChannelValueGT applies the GT predicate on the "channel_value" field.
func ChannelValueGT(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGT(FieldChannelValue, v))
}

// ChannelValueGTE applies the GTE predicate on the "channel_value" field.
func ChannelValueGTE(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGTE(FieldChannelValue, v))
}

// ChannelValueLT applies the LT predicate on the "channel_value" field.
func ChannelValueLT(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLT(FieldChannelValue, v))
}

// ChannelValueLTE applies the LTE predicate on the "channel_value" field.
func ChannelValueLTE(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLTE(FieldChannelValue, v))
}

// ChannelValueContains applies the Contains predicate on the "channel_value" field.
func ChannelValueContains(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContains(FieldChannelValue, v))
}

// ChannelValueHasPrefix applies the HasPrefix predicate on the "channel_value" field.
func ChannelValueHasPrefix(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldHasPrefix(FieldChannelValue, v))
}

// ChannelValueHasSuffix applies the HasSuffix predicate on the "channel_value" field.
func ChannelValueHasSuffix(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldHasSuffix(FieldChannelValue, v))
}

// ChannelValueEqualFold applies the EqualFold predicate on the "channel_value" field.
func ChannelValueEqualFold(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEqualFold(FieldChannelValue, v))
}

// ChannelValueContainsFold applies the ContainsFold predicate on the "channel_value" field.
func ChannelValueContainsFold(v string) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldContainsFold(FieldChannelValue, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldIsPrimary, v))
}

// SecuredEQ applies the EQ predicate on the "secured" field.
func SecuredEQ(v bool) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldSecured, v))
}

// SecuredNEQ applies the NEQ predicate on the "secured" field.
func SecuredNEQ(v bool) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldSecured, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContactChannel {
	return predicate.ContactChannel(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContact applies the HasEdge predicate on the "contact" edge.
func HasContact() predicate.ContactChannel {
	return predicate.ContactChannel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactWith applies the HasEdge predicate on the "contact" edge with a given conditions (other predicates).
func HasContactWith(preds ...predicate.Contact) predicate.ContactChannel {
	return predicate.ContactChannel(func(s *sql.Selector) {
		step := newContactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContactChannel) predicate.ContactChannel {
	return predicate.ContactChannel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContactChannel) predicate.ContactChannel {
	return predicate.ContactChannel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContactChannel) predicate.ContactChannel {
	return predicate.ContactChannel(sql.NotPredicates(p))
}
