// Code generated by ent, DO NOT EDIT.

package approvalevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalevent type in the database.
	Label = "approval_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldActionID holds the string denoting the action_id field in the database.
	FieldActionID = "action_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPayloadMetadata holds the string denoting the payload_metadata field in the database.
	FieldPayloadMetadata = "payload_metadata"
	// Table holds the table name of the approvalevent in the database.
	Table = "approval_events"
)

// Columns holds all SQL columns for approvalevent fields.
var Columns = []string{
	FieldID,
	FieldEventType,
	FieldActionID,
	FieldRuleID,
	FieldActor,
	FieldOccurredAt,
	FieldReason,
	FieldPayloadMetadata,
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
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeActionQueued       EventType = "action_queued"
	EventTypeAutoApproved       EventType = "auto_approved"
	EventTypeApproved           EventType = "approved"
	EventTypeRejected           EventType = "rejected"
	EventTypeExpired            EventType = "expired"
	EventTypeExecutionSucceeded EventType = "execution_succeeded"
	EventTypeExecutionFailed    EventType = "execution_failed"
	EventTypeRuleCreated        EventType = "rule_created"
	EventTypeRuleRevoked        EventType = "rule_revoked"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeActionQueued, EventTypeAutoApproved, EventTypeApproved, EventTypeRejected, EventTypeExpired, EventTypeExecutionSucceeded, EventTypeExecutionFailed, EventTypeRuleCreated, EventTypeRuleRevoked:
		return nil
	default:
		return fmt.Errorf("approvalevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the ApprovalEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByActionID orders the results by the action_id field.
func ByActionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}
