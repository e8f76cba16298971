// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldButler holds the string denoting the butler field in the database.
	FieldButler = "butler"
	// FieldTriggerKind holds the string denoting the trigger_kind field in the database.
	FieldTriggerKind = "trigger_kind"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldInputPrompt holds the string denoting the input_prompt field in the database.
	FieldInputPrompt = "input_prompt"
	// FieldOutputSummary holds the string denoting the output_summary field in the database.
	FieldOutputSummary = "output_summary"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldButler,
	FieldTriggerKind,
	FieldStartedAt,
	FieldEndedAt,
	FieldInputPrompt,
	FieldOutputSummary,
	FieldError,
	FieldCost,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// TriggerKind defines the type for the "trigger_kind" enum field.
type TriggerKind string

// TriggerKind values.
const (
	TriggerKindIngest   TriggerKind = "ingest"
	TriggerKindSchedule TriggerKind = "schedule"
	TriggerKindManual   TriggerKind = "manual"
)

func (tk TriggerKind) String() string {
	return string(tk)
}

// TriggerKindValidator is a validator for the "trigger_kind" field enum values. It is called by the builders before save.
func TriggerKindValidator(tk TriggerKind) error {
	switch tk {
	case TriggerKindIngest, TriggerKindSchedule, TriggerKindManual:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for trigger_kind field: %q", tk)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByButler orders the results by the butler field.
func ByButler(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldButler, opts...).ToFunc()
}

// ByTriggerKind orders the results by the trigger_kind field.
func ByTriggerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerKind, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByInputPrompt orders the results by the input_prompt field.
func ByInputPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputPrompt, opts...).ToFunc()
}

// ByOutputSummary orders the results by the output_summary field.
func ByOutputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputSummary, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}
