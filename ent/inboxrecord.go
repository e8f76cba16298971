// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/inboxrecord"
)

// InboxRecord is the model entity for the InboxRecord schema.
type InboxRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceChannel holds the value of the "source_channel" field.
	SourceChannel string `json:"source_channel,omitempty"`
	// SourceMessageID holds the value of the "source_message_id" field.
	SourceMessageID string `json:"source_message_id,omitempty"`
	// Normalized event payload
	Payload map[string]interface{} `json:"payload,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt time.Time `json:"ingested_at,omitempty"`
	// Links to the worker session that processed this event
	PipelineRequestID *string `json:"pipeline_request_id,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InboxRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inboxrecord.FieldPayload:
			values[i] = new([]byte)
		case inboxrecord.FieldID, inboxrecord.FieldSourceChannel, inboxrecord.FieldSourceMessageID, inboxrecord.FieldPipelineRequestID:
			values[i] = new(sql.NullString)
		case inboxrecord.FieldIngestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InboxRecord fields.
func (_m *InboxRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inboxrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case inboxrecord.FieldSourceChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_channel", values[i])
			} else if value.Valid {
				_m.SourceChannel = value.String
			}
		case inboxrecord.FieldSourceMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_message_id", values[i])
			} else if value.Valid {
				_m.SourceMessageID = value.String
			}
		case inboxrecord.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case inboxrecord.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		case inboxrecord.FieldPipelineRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_request_id", values[i])
			} else if value.Valid {
				_m.PipelineRequestID = new(string)
				*_m.PipelineRequestID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InboxRecord.
// This includes values selected through modifiers, order, etc.
func (_m *InboxRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InboxRecord.
// Note that you need to call InboxRecord.Unwrap() before calling this method if this InboxRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InboxRecord) Update() *InboxRecordUpdateOne {
	return NewInboxRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InboxRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InboxRecord) Unwrap() *InboxRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InboxRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InboxRecord) String() string {
	var builder strings.Builder
	builder.WriteString("InboxRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_channel=")
	builder.WriteString(_m.SourceChannel)
	builder.WriteString(", ")
	builder.WriteString("source_message_id=")
	builder.WriteString(_m.SourceMessageID)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PipelineRequestID; v != nil {
		builder.WriteString("pipeline_request_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// InboxRecords is a parsable slice of InboxRecord.
type InboxRecords []*InboxRecord
