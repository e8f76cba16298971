// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/contact"
	"github.com/butlerhq/butlerd/ent/contactchannel"
)

// ContactChannel is the model entity for the ContactChannel schema.
type ContactChannel struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ContactID holds the value of the "contact_id" field.
	ContactID string `json:"contact_id,omitempty"`
	// e.g. 'telegram', 'email', 'signal'
	ChannelType string `json:"channel_type,omitempty"`
	// ChannelValue holds the value of the "channel_value" field.
	ChannelValue string `json:"channel_value,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary bool `json:"is_primary,omitempty"`
	// Credential material; excluded from default read paths
	Secured bool `json:"secured,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContactChannelQuery when eager-loading is set.
	Edges        ContactChannelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContactChannelEdges holds the relations/edges for other nodes in the graph.
type ContactChannelEdges struct {
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContactChannelEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContactChannel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contactchannel.FieldIsPrimary, contactchannel.FieldSecured:
			values[i] = new(sql.NullBool)
		case contactchannel.FieldID, contactchannel.FieldContactID, contactchannel.FieldChannelType, contactchannel.FieldChannelValue:
			values[i] = new(sql.NullString)
		case contactchannel.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContactChannel fields.
func (_m *ContactChannel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contactchannel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contactchannel.FieldContactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = value.String
			}
		case contactchannel.FieldChannelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_type", values[i])
			} else if value.Valid {
				_m.ChannelType = value.String
			}
		case contactchannel.FieldChannelValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_value", values[i])
			} else if value.Valid {
				_m.ChannelValue = value.String
			}
		case contactchannel.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		case contactchannel.FieldSecured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field secured", values[i])
			} else if value.Valid {
				_m.Secured = value.Bool
			}
		case contactchannel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContactChannel.
// This includes values selected through modifiers, order, etc.
func (_m *ContactChannel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContact queries the "contact" edge of the ContactChannel entity.
func (_m *ContactChannel) QueryContact() *ContactQuery {
	return NewContactChannelClient(_m.config).QueryContact(_m)
}

// Update returns a builder for updating this ContactChannel.
// Note that you need to call ContactChannel.Unwrap() before calling this method if this ContactChannel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContactChannel) Update() *ContactChannelUpdateOne {
	return NewContactChannelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContactChannel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContactChannel) Unwrap() *ContactChannel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContactChannel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContactChannel) String() string {
	var builder strings.Builder
	builder.WriteString("ContactChannel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contact_id=")
	builder.WriteString(_m.ContactID)
	builder.WriteString(", ")
	builder.WriteString("channel_type=")
	builder.WriteString(_m.ChannelType)
	builder.WriteString(", ")
	builder.WriteString("channel_value=")
	builder.WriteString(_m.ChannelValue)
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteString(", ")
	builder.WriteString("secured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Secured))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContactChannels is a parsable slice of ContactChannel.
type ContactChannels []*ContactChannel
