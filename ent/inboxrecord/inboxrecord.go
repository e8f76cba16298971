// Code generated by ent, DO NOT EDIT.

package inboxrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the inboxrecord type in the database.
	Label = "inbox_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "inbox_id"
	// FieldSourceChannel holds the string denoting the source_channel field in the database.
	FieldSourceChannel = "source_channel"
	// FieldSourceMessageID holds the string denoting the source_message_id field in the database.
	FieldSourceMessageID = "source_message_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldIngestedAt holds the string denoting the ingested_at field in the database.
	FieldIngestedAt = "ingested_at"
	// FieldPipelineRequestID holds the string denoting the pipeline_request_id field in the database.
	FieldPipelineRequestID = "pipeline_request_id"
	// Table holds the table name of the inboxrecord in the database.
	Table = "inbox_records"
)

// Columns holds all SQL columns for inboxrecord fields.
var Columns = []string{
	FieldID,
	FieldSourceChannel,
	FieldSourceMessageID,
	FieldPayload,
	FieldIngestedAt,
	FieldPipelineRequestID,
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
	// DefaultIngestedAt holds the default value on creation for the "ingested_at" field.
	DefaultIngestedAt func() time.Time
)

// OrderOption defines the ordering options for the InboxRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceChannel orders the results by the source_channel field.
func BySourceChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceChannel, opts...).ToFunc()
}

// BySourceMessageID orders the results by the source_message_id field.
func BySourceMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMessageID, opts...).ToFunc()
}

// ByIngestedAt orders the results by the ingested_at field.
func ByIngestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestedAt, opts...).ToFunc()
}

// ByPipelineRequestID orders the results by the pipeline_request_id field.
func ByPipelineRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineRequestID, opts...).ToFunc()
}
