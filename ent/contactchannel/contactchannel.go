// Code generated by ent, DO NOT EDIT.

package contactchannel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contactchannel type in the database.
	Label = "contact_channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "channel_id"
	// FieldContactID holds the string denoting the contact_id field in the database.
	FieldContactID = "contact_id"
	// FieldChannelType holds the string denoting the channel_type field in the database.
	FieldChannelType = "channel_type"
	// FieldChannelValue holds the string denoting the channel_value field in the database.
	FieldChannelValue = "channel_value"
	// FieldIsPrimary holds the string denoting the is_primary field in the database.
	FieldIsPrimary = "is_primary"
	// FieldSecured holds the string denoting the secured field in the database.
	FieldSecured = "secured"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeContact holds the string denoting the contact edge name in mutations.
	EdgeContact = "contact"
	// ContactFieldID holds the string denoting the ID field of the Contact.
	ContactFieldID = "contact_id"
	// Table holds the table name of the contactchannel in the database.
	Table = "contact_channels"
	// ContactTable is the table that holds the contact relation/edge.
	ContactTable = "contact_channels"
	// ContactInverseTable is the table name for the Contact entity.
	// It exists in this package in order to avoid circular dependency with the "contact" package.
	ContactInverseTable = "contacts"
	// ContactColumn is the table column denoting the contact relation/edge.
	ContactColumn = "contact_id"
)

// Columns holds all SQL columns for contactchannel fields.
var Columns = []string{
	FieldID,
	FieldContactID,
	FieldChannelType,
	FieldChannelValue,
	FieldIsPrimary,
	FieldSecured,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsPrimary holds the default value on creation for the "is_primary" field.
	DefaultIsPrimary bool
	// DefaultSecured holds the default value on creation for the "secured" field.
	DefaultSecured bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ContactChannel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContactID orders the results by the contact_id field.
func ByContactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactID, opts...).ToFunc()
}

// ByChannelType orders the results by the channel_type field.
func ByChannelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelType, opts...).ToFunc()
}

// ByChannelValue orders the results by the channel_value field.
func ByChannelValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelValue, opts...).ToFunc()
}

// ByIsPrimary orders the results by the is_primary field.
func ByIsPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPrimary, opts...).ToFunc()
}

// BySecured orders the results by the secured field.
func BySecured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecured, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByContactField orders the results by contact field.
func ByContactField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContactStep(), sql.OrderByField(field, opts...))
	}
}
func newContactStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContactInverseTable, ContactFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
	)
}
