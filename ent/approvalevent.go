// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/approvalevent"
)

// ApprovalEvent is the model entity for the ApprovalEvent schema.
type ApprovalEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType approvalevent.EventType `json:"event_type,omitempty"`
	// ActionID holds the value of the "action_id" field.
	ActionID *string `json:"action_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID *string `json:"rule_id,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor string `json:"actor,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// PayloadMetadata holds the value of the "payload_metadata" field.
	PayloadMetadata map[string]interface{} `json:"payload_metadata,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalevent.FieldPayloadMetadata:
			values[i] = new([]byte)
		case approvalevent.FieldID, approvalevent.FieldEventType, approvalevent.FieldActionID, approvalevent.FieldRuleID, approvalevent.FieldActor, approvalevent.FieldReason:
			values[i] = new(sql.NullString)
		case approvalevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalEvent fields.
func (_m *ApprovalEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = approvalevent.EventType(value.String)
			}
		case approvalevent.FieldActionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_id", values[i])
			} else if value.Valid {
				_m.ActionID = new(string)
				*_m.ActionID = value.String
			}
		case approvalevent.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = new(string)
				*_m.RuleID = value.String
			}
		case approvalevent.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case approvalevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		case approvalevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case approvalevent.FieldPayloadMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PayloadMetadata); err != nil {
					return fmt.Errorf("unmarshal field payload_metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalEvent.
// Note that you need to call ApprovalEvent.Unwrap() before calling this method if this ApprovalEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalEvent) Update() *ApprovalEventUpdateOne {
	return NewApprovalEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalEvent) Unwrap() *ApprovalEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	if v := _m.ActionID; v != nil {
		builder.WriteString("action_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RuleID; v != nil {
		builder.WriteString("rule_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("payload_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.PayloadMetadata))
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalEvents is a parsable slice of ApprovalEvent.
type ApprovalEvents []*ApprovalEvent
