// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/contact"
	"github.com/butlerhq/butlerd/ent/contactchannel"
	"github.com/butlerhq/butlerd/ent/inboxrecord"
	"github.com/butlerhq/butlerd/ent/kventry"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/ent/predicate"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/ent/session"
	"github.com/butlerhq/butlerd/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalEvent  = "ApprovalEvent"
	TypeApprovalRule   = "ApprovalRule"
	TypeContact        = "Contact"
	TypeContactChannel = "ContactChannel"
	TypeInboxRecord    = "InboxRecord"
	TypeKVEntry        = "KVEntry"
	TypePendingAction  = "PendingAction"
	TypeScheduledTask  = "ScheduledTask"
	TypeSession        = "Session"
)

// ApprovalEventMutation represents an operation that mutates the ApprovalEvent nodes in the graph.
type ApprovalEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	event_type       *approvalevent.EventType
	action_id        *string
	rule_id          *string
	actor            *string
	occurred_at      *time.Time
	reason           *string
	payload_metadata *map[string]interface{}
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ApprovalEvent, error)
	predicates       []predicate.ApprovalEvent
}

var _ ent.Mutation = (*ApprovalEventMutation)(nil)

// approvaleventOption allows management of the mutation configuration using functional options.
type approvaleventOption func(*ApprovalEventMutation)

// newApprovalEventMutation creates new mutation for the ApprovalEvent entity.
func newApprovalEventMutation(c config, op Op, opts ...approvaleventOption) *ApprovalEventMutation {
	m := &ApprovalEventMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalEventID sets the ID field of the mutation.
func withApprovalEventID(id string) approvaleventOption {
	return func(m *ApprovalEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalEvent
		)
		m.oldValue = func(ctx context.Context) (*ApprovalEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalEvent sets the old ApprovalEvent of the mutation.
func withApprovalEvent(node *ApprovalEvent) approvaleventOption {
	return func(m *ApprovalEventMutation) {
		m.oldValue = func(context.Context) (*ApprovalEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalEvent entities.
func (m *ApprovalEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *ApprovalEventMutation) SetEventType(at approvalevent.EventType) {
	m.event_type = &at
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ApprovalEventMutation) EventType() (r approvalevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldEventType(ctx context.Context) (v approvalevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ApprovalEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetActionID sets the "action_id" field.
func (m *ApprovalEventMutation) SetActionID(s string) {
	m.action_id = &s
}

// ActionID returns the value of the "action_id" field in the mutation.
func (m *ApprovalEventMutation) ActionID() (r string, exists bool) {
	v := m.action_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActionID returns the old "action_id" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldActionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionID: %w", err)
	}
	return oldValue.ActionID, nil
}

// ClearActionID clears the value of the "action_id" field.
func (m *ApprovalEventMutation) ClearActionID() {
	m.action_id = nil
	m.clearedFields[approvalevent.FieldActionID] = struct{}{}
}

// ActionIDCleared returns if the "action_id" field was cleared in this mutation.
func (m *ApprovalEventMutation) ActionIDCleared() bool {
	_, ok := m.clearedFields[approvalevent.FieldActionID]
	return ok
}

// ResetActionID resets all changes to the "action_id" field.
func (m *ApprovalEventMutation) ResetActionID() {
	m.action_id = nil
	delete(m.clearedFields, approvalevent.FieldActionID)
}

// SetRuleID sets the "rule_id" field.
func (m *ApprovalEventMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *ApprovalEventMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldRuleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ClearRuleID clears the value of the "rule_id" field.
func (m *ApprovalEventMutation) ClearRuleID() {
	m.rule_id = nil
	m.clearedFields[approvalevent.FieldRuleID] = struct{}{}
}

// RuleIDCleared returns if the "rule_id" field was cleared in this mutation.
func (m *ApprovalEventMutation) RuleIDCleared() bool {
	_, ok := m.clearedFields[approvalevent.FieldRuleID]
	return ok
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *ApprovalEventMutation) ResetRuleID() {
	m.rule_id = nil
	delete(m.clearedFields, approvalevent.FieldRuleID)
}

// SetActor sets the "actor" field.
func (m *ApprovalEventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *ApprovalEventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *ApprovalEventMutation) ResetActor() {
	m.actor = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ApprovalEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ApprovalEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ApprovalEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetReason sets the "reason" field.
func (m *ApprovalEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ApprovalEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ApprovalEventMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[approvalevent.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ApprovalEventMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[approvalevent.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ApprovalEventMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, approvalevent.FieldReason)
}

// SetPayloadMetadata sets the "payload_metadata" field.
func (m *ApprovalEventMutation) SetPayloadMetadata(value map[string]interface{}) {
	m.payload_metadata = &value
}

// PayloadMetadata returns the value of the "payload_metadata" field in the mutation.
func (m *ApprovalEventMutation) PayloadMetadata() (r map[string]interface{}, exists bool) {
	v := m.payload_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadMetadata returns the old "payload_metadata" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldPayloadMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadMetadata: %w", err)
	}
	return oldValue.PayloadMetadata, nil
}

// ClearPayloadMetadata clears the value of the "payload_metadata" field.
func (m *ApprovalEventMutation) ClearPayloadMetadata() {
	m.payload_metadata = nil
	m.clearedFields[approvalevent.FieldPayloadMetadata] = struct{}{}
}

// PayloadMetadataCleared returns if the "payload_metadata" field was cleared in this mutation.
func (m *ApprovalEventMutation) PayloadMetadataCleared() bool {
	_, ok := m.clearedFields[approvalevent.FieldPayloadMetadata]
	return ok
}

// ResetPayloadMetadata resets all changes to the "payload_metadata" field.
func (m *ApprovalEventMutation) ResetPayloadMetadata() {
	m.payload_metadata = nil
	delete(m.clearedFields, approvalevent.FieldPayloadMetadata)
}

// Where appends a list predicates to the ApprovalEventMutation builder.
func (m *ApprovalEventMutation) Where(ps ...predicate.ApprovalEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalEvent).
func (m *ApprovalEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.event_type != nil {
		fields = append(fields, approvalevent.FieldEventType)
	}
	if m.action_id != nil {
		fields = append(fields, approvalevent.FieldActionID)
	}
	if m.rule_id != nil {
		fields = append(fields, approvalevent.FieldRuleID)
	}
	if m.actor != nil {
		fields = append(fields, approvalevent.FieldActor)
	}
	if m.occurred_at != nil {
		fields = append(fields, approvalevent.FieldOccurredAt)
	}
	if m.reason != nil {
		fields = append(fields, approvalevent.FieldReason)
	}
	if m.payload_metadata != nil {
		fields = append(fields, approvalevent.FieldPayloadMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalevent.FieldEventType:
		return m.EventType()
	case approvalevent.FieldActionID:
		return m.ActionID()
	case approvalevent.FieldRuleID:
		return m.RuleID()
	case approvalevent.FieldActor:
		return m.Actor()
	case approvalevent.FieldOccurredAt:
		return m.OccurredAt()
	case approvalevent.FieldReason:
		return m.Reason()
	case approvalevent.FieldPayloadMetadata:
		return m.PayloadMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalevent.FieldEventType:
		return m.OldEventType(ctx)
	case approvalevent.FieldActionID:
		return m.OldActionID(ctx)
	case approvalevent.FieldRuleID:
		return m.OldRuleID(ctx)
	case approvalevent.FieldActor:
		return m.OldActor(ctx)
	case approvalevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case approvalevent.FieldReason:
		return m.OldReason(ctx)
	case approvalevent.FieldPayloadMetadata:
		return m.OldPayloadMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalevent.FieldEventType:
		v, ok := value.(approvalevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case approvalevent.FieldActionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionID(v)
		return nil
	case approvalevent.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case approvalevent.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case approvalevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case approvalevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case approvalevent.FieldPayloadMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalevent.FieldActionID) {
		fields = append(fields, approvalevent.FieldActionID)
	}
	if m.FieldCleared(approvalevent.FieldRuleID) {
		fields = append(fields, approvalevent.FieldRuleID)
	}
	if m.FieldCleared(approvalevent.FieldReason) {
		fields = append(fields, approvalevent.FieldReason)
	}
	if m.FieldCleared(approvalevent.FieldPayloadMetadata) {
		fields = append(fields, approvalevent.FieldPayloadMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalEventMutation) ClearField(name string) error {
	switch name {
	case approvalevent.FieldActionID:
		m.ClearActionID()
		return nil
	case approvalevent.FieldRuleID:
		m.ClearRuleID()
		return nil
	case approvalevent.FieldReason:
		m.ClearReason()
		return nil
	case approvalevent.FieldPayloadMetadata:
		m.ClearPayloadMetadata()
		return nil
	}
	return fmt.Errorf("unknown ApprovalEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalEventMutation) ResetField(name string) error {
	switch name {
	case approvalevent.FieldEventType:
		m.ResetEventType()
		return nil
	case approvalevent.FieldActionID:
		m.ResetActionID()
		return nil
	case approvalevent.FieldRuleID:
		m.ResetRuleID()
		return nil
	case approvalevent.FieldActor:
		m.ResetActor()
		return nil
	case approvalevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case approvalevent.FieldReason:
		m.ResetReason()
		return nil
	case approvalevent.FieldPayloadMetadata:
		m.ResetPayloadMetadata()
		return nil
	}
	return fmt.Errorf("unknown ApprovalEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalEvent edge %s", name)
}

// ApprovalRuleMutation represents an operation that mutates the ApprovalRule nodes in the graph.
type ApprovalRuleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tool_name              *string
	arg_constraints        *map[string]models.ArgConstraint
	description            *string
	created_at             *time.Time
	active                 *bool
	expires_at             *time.Time
	max_uses               *int
	addmax_uses            *int
	use_count              *int
	adduse_count           *int
	risk_tier              *approvalrule.RiskTier
	created_from_action_id *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ApprovalRule, error)
	predicates             []predicate.ApprovalRule
}

var _ ent.Mutation = (*ApprovalRuleMutation)(nil)

// approvalruleOption allows management of the mutation configuration using functional options.
type approvalruleOption func(*ApprovalRuleMutation)

// newApprovalRuleMutation creates new mutation for the ApprovalRule entity.
func newApprovalRuleMutation(c config, op Op, opts ...approvalruleOption) *ApprovalRuleMutation {
	m := &ApprovalRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRuleID sets the ID field of the mutation.
func withApprovalRuleID(id string) approvalruleOption {
	return func(m *ApprovalRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRule
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRule sets the old ApprovalRule of the mutation.
func withApprovalRule(node *ApprovalRule) approvalruleOption {
	return func(m *ApprovalRuleMutation) {
		m.oldValue = func(context.Context) (*ApprovalRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRule entities.
func (m *ApprovalRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToolName sets the "tool_name" field.
func (m *ApprovalRuleMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ApprovalRuleMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ApprovalRuleMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArgConstraints sets the "arg_constraints" field.
func (m *ApprovalRuleMutation) SetArgConstraints(mc map[string]models.ArgConstraint) {
	m.arg_constraints = &mc
}

// ArgConstraints returns the value of the "arg_constraints" field in the mutation.
func (m *ApprovalRuleMutation) ArgConstraints() (r map[string]models.ArgConstraint, exists bool) {
	v := m.arg_constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldArgConstraints returns the old "arg_constraints" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldArgConstraints(ctx context.Context) (v map[string]models.ArgConstraint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgConstraints: %w", err)
	}
	return oldValue.ArgConstraints, nil
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (m *ApprovalRuleMutation) ClearArgConstraints() {
	m.arg_constraints = nil
	m.clearedFields[approvalrule.FieldArgConstraints] = struct{}{}
}

// ArgConstraintsCleared returns if the "arg_constraints" field was cleared in this mutation.
func (m *ApprovalRuleMutation) ArgConstraintsCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldArgConstraints]
	return ok
}

// ResetArgConstraints resets all changes to the "arg_constraints" field.
func (m *ApprovalRuleMutation) ResetArgConstraints() {
	m.arg_constraints = nil
	delete(m.clearedFields, approvalrule.FieldArgConstraints)
}

// SetDescription sets the "description" field.
func (m *ApprovalRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApprovalRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ApprovalRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[approvalrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ApprovalRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ApprovalRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, approvalrule.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActive sets the "active" field.
func (m *ApprovalRuleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ApprovalRuleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ApprovalRuleMutation) ResetActive() {
	m.active = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalRuleMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalRuleMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ApprovalRuleMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[approvalrule.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ApprovalRuleMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalRuleMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, approvalrule.FieldExpiresAt)
}

// SetMaxUses sets the "max_uses" field.
func (m *ApprovalRuleMutation) SetMaxUses(i int) {
	m.max_uses = &i
	m.addmax_uses = nil
}

// MaxUses returns the value of the "max_uses" field in the mutation.
func (m *ApprovalRuleMutation) MaxUses() (r int, exists bool) {
	v := m.max_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxUses returns the old "max_uses" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldMaxUses(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxUses: %w", err)
	}
	return oldValue.MaxUses, nil
}

// AddMaxUses adds i to the "max_uses" field.
func (m *ApprovalRuleMutation) AddMaxUses(i int) {
	if m.addmax_uses != nil {
		*m.addmax_uses += i
	} else {
		m.addmax_uses = &i
	}
}

// AddedMaxUses returns the value that was added to the "max_uses" field in this mutation.
func (m *ApprovalRuleMutation) AddedMaxUses() (r int, exists bool) {
	v := m.addmax_uses
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxUses clears the value of the "max_uses" field.
func (m *ApprovalRuleMutation) ClearMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	m.clearedFields[approvalrule.FieldMaxUses] = struct{}{}
}

// MaxUsesCleared returns if the "max_uses" field was cleared in this mutation.
func (m *ApprovalRuleMutation) MaxUsesCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldMaxUses]
	return ok
}

// ResetMaxUses resets all changes to the "max_uses" field.
func (m *ApprovalRuleMutation) ResetMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	delete(m.clearedFields, approvalrule.FieldMaxUses)
}

// SetUseCount sets the "use_count" field.
func (m *ApprovalRuleMutation) SetUseCount(i int) {
	m.use_count = &i
	m.adduse_count = nil
}

// UseCount returns the value of the "use_count" field in the mutation.
func (m *ApprovalRuleMutation) UseCount() (r int, exists bool) {
	v := m.use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCount returns the old "use_count" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCount: %w", err)
	}
	return oldValue.UseCount, nil
}

// AddUseCount adds i to the "use_count" field.
func (m *ApprovalRuleMutation) AddUseCount(i int) {
	if m.adduse_count != nil {
		*m.adduse_count += i
	} else {
		m.adduse_count = &i
	}
}

// AddedUseCount returns the value that was added to the "use_count" field in this mutation.
func (m *ApprovalRuleMutation) AddedUseCount() (r int, exists bool) {
	v := m.adduse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseCount resets all changes to the "use_count" field.
func (m *ApprovalRuleMutation) ResetUseCount() {
	m.use_count = nil
	m.adduse_count = nil
}

// SetRiskTier sets the "risk_tier" field.
func (m *ApprovalRuleMutation) SetRiskTier(at approvalrule.RiskTier) {
	m.risk_tier = &at
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *ApprovalRuleMutation) RiskTier() (r approvalrule.RiskTier, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldRiskTier(ctx context.Context) (v approvalrule.RiskTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *ApprovalRuleMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetCreatedFromActionID sets the "created_from_action_id" field.
func (m *ApprovalRuleMutation) SetCreatedFromActionID(s string) {
	m.created_from_action_id = &s
}

// CreatedFromActionID returns the value of the "created_from_action_id" field in the mutation.
func (m *ApprovalRuleMutation) CreatedFromActionID() (r string, exists bool) {
	v := m.created_from_action_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedFromActionID returns the old "created_from_action_id" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldCreatedFromActionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedFromActionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedFromActionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedFromActionID: %w", err)
	}
	return oldValue.CreatedFromActionID, nil
}

// ClearCreatedFromActionID clears the value of the "created_from_action_id" field.
func (m *ApprovalRuleMutation) ClearCreatedFromActionID() {
	m.created_from_action_id = nil
	m.clearedFields[approvalrule.FieldCreatedFromActionID] = struct{}{}
}

// CreatedFromActionIDCleared returns if the "created_from_action_id" field was cleared in this mutation.
func (m *ApprovalRuleMutation) CreatedFromActionIDCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldCreatedFromActionID]
	return ok
}

// ResetCreatedFromActionID resets all changes to the "created_from_action_id" field.
func (m *ApprovalRuleMutation) ResetCreatedFromActionID() {
	m.created_from_action_id = nil
	delete(m.clearedFields, approvalrule.FieldCreatedFromActionID)
}

// Where appends a list predicates to the ApprovalRuleMutation builder.
func (m *ApprovalRuleMutation) Where(ps ...predicate.ApprovalRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRule).
func (m *ApprovalRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRuleMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tool_name != nil {
		fields = append(fields, approvalrule.FieldToolName)
	}
	if m.arg_constraints != nil {
		fields = append(fields, approvalrule.FieldArgConstraints)
	}
	if m.description != nil {
		fields = append(fields, approvalrule.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrule.FieldCreatedAt)
	}
	if m.active != nil {
		fields = append(fields, approvalrule.FieldActive)
	}
	if m.expires_at != nil {
		fields = append(fields, approvalrule.FieldExpiresAt)
	}
	if m.max_uses != nil {
		fields = append(fields, approvalrule.FieldMaxUses)
	}
	if m.use_count != nil {
		fields = append(fields, approvalrule.FieldUseCount)
	}
	if m.risk_tier != nil {
		fields = append(fields, approvalrule.FieldRiskTier)
	}
	if m.created_from_action_id != nil {
		fields = append(fields, approvalrule.FieldCreatedFromActionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrule.FieldToolName:
		return m.ToolName()
	case approvalrule.FieldArgConstraints:
		return m.ArgConstraints()
	case approvalrule.FieldDescription:
		return m.Description()
	case approvalrule.FieldCreatedAt:
		return m.CreatedAt()
	case approvalrule.FieldActive:
		return m.Active()
	case approvalrule.FieldExpiresAt:
		return m.ExpiresAt()
	case approvalrule.FieldMaxUses:
		return m.MaxUses()
	case approvalrule.FieldUseCount:
		return m.UseCount()
	case approvalrule.FieldRiskTier:
		return m.RiskTier()
	case approvalrule.FieldCreatedFromActionID:
		return m.CreatedFromActionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrule.FieldToolName:
		return m.OldToolName(ctx)
	case approvalrule.FieldArgConstraints:
		return m.OldArgConstraints(ctx)
	case approvalrule.FieldDescription:
		return m.OldDescription(ctx)
	case approvalrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approvalrule.FieldActive:
		return m.OldActive(ctx)
	case approvalrule.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approvalrule.FieldMaxUses:
		return m.OldMaxUses(ctx)
	case approvalrule.FieldUseCount:
		return m.OldUseCount(ctx)
	case approvalrule.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case approvalrule.FieldCreatedFromActionID:
		return m.OldCreatedFromActionID(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrule.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case approvalrule.FieldArgConstraints:
		v, ok := value.(map[string]models.ArgConstraint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgConstraints(v)
		return nil
	case approvalrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case approvalrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approvalrule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case approvalrule.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approvalrule.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxUses(v)
		return nil
	case approvalrule.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCount(v)
		return nil
	case approvalrule.FieldRiskTier:
		v, ok := value.(approvalrule.RiskTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case approvalrule.FieldCreatedFromActionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedFromActionID(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRuleMutation) AddedFields() []string {
	var fields []string
	if m.addmax_uses != nil {
		fields = append(fields, approvalrule.FieldMaxUses)
	}
	if m.adduse_count != nil {
		fields = append(fields, approvalrule.FieldUseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case approvalrule.FieldMaxUses:
		return m.AddedMaxUses()
	case approvalrule.FieldUseCount:
		return m.AddedUseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case approvalrule.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxUses(v)
		return nil
	case approvalrule.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseCount(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrule.FieldArgConstraints) {
		fields = append(fields, approvalrule.FieldArgConstraints)
	}
	if m.FieldCleared(approvalrule.FieldDescription) {
		fields = append(fields, approvalrule.FieldDescription)
	}
	if m.FieldCleared(approvalrule.FieldExpiresAt) {
		fields = append(fields, approvalrule.FieldExpiresAt)
	}
	if m.FieldCleared(approvalrule.FieldMaxUses) {
		fields = append(fields, approvalrule.FieldMaxUses)
	}
	if m.FieldCleared(approvalrule.FieldCreatedFromActionID) {
		fields = append(fields, approvalrule.FieldCreatedFromActionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRuleMutation) ClearField(name string) error {
	switch name {
	case approvalrule.FieldArgConstraints:
		m.ClearArgConstraints()
		return nil
	case approvalrule.FieldDescription:
		m.ClearDescription()
		return nil
	case approvalrule.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case approvalrule.FieldMaxUses:
		m.ClearMaxUses()
		return nil
	case approvalrule.FieldCreatedFromActionID:
		m.ClearCreatedFromActionID()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRuleMutation) ResetField(name string) error {
	switch name {
	case approvalrule.FieldToolName:
		m.ResetToolName()
		return nil
	case approvalrule.FieldArgConstraints:
		m.ResetArgConstraints()
		return nil
	case approvalrule.FieldDescription:
		m.ResetDescription()
		return nil
	case approvalrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approvalrule.FieldActive:
		m.ResetActive()
		return nil
	case approvalrule.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approvalrule.FieldMaxUses:
		m.ResetMaxUses()
		return nil
	case approvalrule.FieldUseCount:
		m.ResetUseCount()
		return nil
	case approvalrule.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case approvalrule.FieldCreatedFromActionID:
		m.ResetCreatedFromActionID()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRule edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	roles           *[]string
	appendroles     []string
	entity_id       *string
	metadata        *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	channels        map[string]struct{}
	removedchannels map[string]struct{}
	clearedchannels bool
	done            bool
	oldValue        func(context.Context) (*Contact, error)
	predicates      []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id string) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contact entities.
func (m *ContactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ContactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContactMutation) ResetName() {
	m.name = nil
}

// SetRoles sets the "roles" field.
func (m *ContactMutation) SetRoles(s []string) {
	m.roles = &s
	m.appendroles = nil
}

// Roles returns the value of the "roles" field in the mutation.
func (m *ContactMutation) Roles() (r []string, exists bool) {
	v := m.roles
	if v == nil {
		return
	}
	return *v, true
}

// OldRoles returns the old "roles" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldRoles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoles: %w", err)
	}
	return oldValue.Roles, nil
}

// AppendRoles adds s to the "roles" field.
func (m *ContactMutation) AppendRoles(s []string) {
	m.appendroles = append(m.appendroles, s...)
}

// AppendedRoles returns the list of values that were appended to the "roles" field in this mutation.
func (m *ContactMutation) AppendedRoles() ([]string, bool) {
	if len(m.appendroles) == 0 {
		return nil, false
	}
	return m.appendroles, true
}

// ClearRoles clears the value of the "roles" field.
func (m *ContactMutation) ClearRoles() {
	m.roles = nil
	m.appendroles = nil
	m.clearedFields[contact.FieldRoles] = struct{}{}
}

// RolesCleared returns if the "roles" field was cleared in this mutation.
func (m *ContactMutation) RolesCleared() bool {
	_, ok := m.clearedFields[contact.FieldRoles]
	return ok
}

// ResetRoles resets all changes to the "roles" field.
func (m *ContactMutation) ResetRoles() {
	m.roles = nil
	m.appendroles = nil
	delete(m.clearedFields, contact.FieldRoles)
}

// SetEntityID sets the "entity_id" field.
func (m *ContactMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ContactMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *ContactMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[contact.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *ContactMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[contact.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ContactMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, contact.FieldEntityID)
}

// SetMetadata sets the "metadata" field.
func (m *ContactMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ContactMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ContactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[contact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ContactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[contact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ContactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, contact.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddChannelIDs adds the "channels" edge to the ContactChannel entity by ids.
func (m *ContactMutation) AddChannelIDs(ids ...string) {
	if m.channels == nil {
		m.channels = make(map[string]struct{})
	}
	for i := range ids {
		m.channels[ids[i]] = struct{}{}
	}
}

// ClearChannels clears the "channels" edge to the ContactChannel entity.
func (m *ContactMutation) ClearChannels() {
	m.clearedchannels = true
}

// ChannelsCleared reports if the "channels" edge to the ContactChannel entity was cleared.
func (m *ContactMutation) ChannelsCleared() bool {
	return m.clearedchannels
}

// RemoveChannelIDs removes the "channels" edge to the ContactChannel entity by IDs.
func (m *ContactMutation) RemoveChannelIDs(ids ...string) {
	if m.removedchannels == nil {
		m.removedchannels = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.channels, ids[i])
		m.removedchannels[ids[i]] = struct{}{}
	}
}

// RemovedChannels returns the removed IDs of the "channels" edge to the ContactChannel entity.
func (m *ContactMutation) RemovedChannelsIDs() (ids []string) {
	for id := range m.removedchannels {
		ids = append(ids, id)
	}
	return
}

// ChannelsIDs returns the "channels" edge IDs in the mutation.
func (m *ContactMutation) ChannelsIDs() (ids []string) {
	for id := range m.channels {
		ids = append(ids, id)
	}
	return
}

// ResetChannels resets all changes to the "channels" edge.
func (m *ContactMutation) ResetChannels() {
	m.channels = nil
	m.clearedchannels = false
	m.removedchannels = nil
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, contact.FieldName)
	}
	if m.roles != nil {
		fields = append(fields, contact.FieldRoles)
	}
	if m.entity_id != nil {
		fields = append(fields, contact.FieldEntityID)
	}
	if m.metadata != nil {
		fields = append(fields, contact.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldName:
		return m.Name()
	case contact.FieldRoles:
		return m.Roles()
	case contact.FieldEntityID:
		return m.EntityID()
	case contact.FieldMetadata:
		return m.Metadata()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldName:
		return m.OldName(ctx)
	case contact.FieldRoles:
		return m.OldRoles(ctx)
	case contact.FieldEntityID:
		return m.OldEntityID(ctx)
	case contact.FieldMetadata:
		return m.OldMetadata(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contact.FieldRoles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoles(v)
		return nil
	case contact.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case contact.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldRoles) {
		fields = append(fields, contact.FieldRoles)
	}
	if m.FieldCleared(contact.FieldEntityID) {
		fields = append(fields, contact.FieldEntityID)
	}
	if m.FieldCleared(contact.FieldMetadata) {
		fields = append(fields, contact.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldRoles:
		m.ClearRoles()
		return nil
	case contact.FieldEntityID:
		m.ClearEntityID()
		return nil
	case contact.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldName:
		m.ResetName()
		return nil
	case contact.FieldRoles:
		m.ResetRoles()
		return nil
	case contact.FieldEntityID:
		m.ResetEntityID()
		return nil
	case contact.FieldMetadata:
		m.ResetMetadata()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.channels != nil {
		edges = append(edges, contact.EdgeChannels)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeChannels:
		ids := make([]ent.Value, 0, len(m.channels))
		for id := range m.channels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchannels != nil {
		edges = append(edges, contact.EdgeChannels)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeChannels:
		ids := make([]ent.Value, 0, len(m.removedchannels))
		for id := range m.removedchannels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchannels {
		edges = append(edges, contact.EdgeChannels)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	switch name {
	case contact.EdgeChannels:
		return m.clearedchannels
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	switch name {
	case contact.EdgeChannels:
		m.ResetChannels()
		return nil
	}
	return fmt.Errorf("unknown Contact edge %s", name)
}

// ContactChannelMutation represents an operation that mutates the ContactChannel nodes in the graph.
type ContactChannelMutation struct {
	config
	op             Op
	typ            string
	id             *string
	channel_type   *string
	channel_value  *string
	is_primary     *bool
	secured        *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	contact        *string
	clearedcontact bool
	done           bool
	oldValue       func(context.Context) (*ContactChannel, error)
	predicates     []predicate.ContactChannel
}

var _ ent.Mutation = (*ContactChannelMutation)(nil)

// contactchannelOption allows management of the mutation configuration using functional options.
type contactchannelOption func(*ContactChannelMutation)

// newContactChannelMutation creates new mutation for the ContactChannel entity.
func newContactChannelMutation(c config, op Op, opts ...contactchannelOption) *ContactChannelMutation {
	m := &ContactChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeContactChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactChannelID sets the ID field of the mutation.
func withContactChannelID(id string) contactchannelOption {
	return func(m *ContactChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *ContactChannel
		)
		m.oldValue = func(ctx context.Context) (*ContactChannel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContactChannel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContactChannel sets the old ContactChannel of the mutation.
func withContactChannel(node *ContactChannel) contactchannelOption {
	return func(m *ContactChannelMutation) {
		m.oldValue = func(context.Context) (*ContactChannel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContactChannel entities.
func (m *ContactChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContactChannel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContactID sets the "contact_id" field.
func (m *ContactChannelMutation) SetContactID(s string) {
	m.contact = &s
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *ContactChannelMutation) ContactID() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the ContactChannel entity.
// If the ContactChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactChannelMutation) OldContactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *ContactChannelMutation) ResetContactID() {
	m.contact = nil
}

// SetChannelType sets the "channel_type" field.
func (m *ContactChannelMutation) SetChannelType(s string) {
	m.channel_type = &s
}

// ChannelType returns the value of the "channel_type" field in the mutation.
func (m *ContactChannelMutation) ChannelType() (r string, exists bool) {
	v := m.channel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelType returns the old "channel_type" field's value of the ContactChannel entity.
// If the ContactChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactChannelMutation) OldChannelType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelType: %w", err)
	}
	return oldValue.ChannelType, nil
}

// ResetChannelType resets all changes to the "channel_type" field.
func (m *ContactChannelMutation) ResetChannelType() {
	m.channel_type = nil
}

// SetChannelValue sets the "channel_value" field.
func (m *ContactChannelMutation) SetChannelValue(s string) {
	m.channel_value = &s
}

// ChannelValue returns the value of the "channel_value" field in the mutation.
func (m *ContactChannelMutation) ChannelValue() (r string, exists bool) {
	v := m.channel_value
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelValue returns the old "channel_value" field's value of the ContactChannel entity.
// If the ContactChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactChannelMutation) OldChannelValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelValue: %w", err)
	}
	return oldValue.ChannelValue, nil
}

// ResetChannelValue resets all changes to the "channel_value" field.
func (m *ContactChannelMutation) ResetChannelValue() {
	m.channel_value = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *ContactChannelMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *ContactChannelMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the ContactChannel entity.
// If the ContactChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactChannelMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *ContactChannelMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetSecured sets the "secured" field.
func (m *ContactChannelMutation) SetSecured(b bool) {
	m.secured = &b
}

// Secured returns the value of the "secured" field in the mutation.
func (m *ContactChannelMutation) Secured() (r bool, exists bool) {
	v := m.secured
	if v == nil {
		return
	}
	return *v, true
}

// OldSecured returns the old "secured" field's value of the ContactChannel entity.
// If the ContactChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactChannelMutation) OldSecured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecured: %w", err)
	}
	return oldValue.Secured, nil
}

// ResetSecured resets all changes to the "secured" field.
func (m *ContactChannelMutation) ResetSecured() {
	m.secured = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContactChannel entity.
// If the ContactChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearContact clears the "contact" edge to the Contact entity.
func (m *ContactChannelMutation) ClearContact() {
	m.clearedcontact = true
	m.clearedFields[contactchannel.FieldContactID] = struct{}{}
}

// ContactCleared reports if the "contact" edge to the Contact entity was cleared.
func (m *ContactChannelMutation) ContactCleared() bool {
	return m.clearedcontact
}

// ContactIDs returns the "contact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContactID instead. It exists only for internal usage by the builders.
func (m *ContactChannelMutation) ContactIDs() (ids []string) {
	if id := m.contact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContact resets all changes to the "contact" edge.
func (m *ContactChannelMutation) ResetContact() {
	m.contact = nil
	m.clearedcontact = false
}

// Where appends a list predicates to the ContactChannelMutation builder.
func (m *ContactChannelMutation) Where(ps ...predicate.ContactChannel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContactChannel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContactChannel).
func (m *ContactChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactChannelMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.contact != nil {
		fields = append(fields, contactchannel.FieldContactID)
	}
	if m.channel_type != nil {
		fields = append(fields, contactchannel.FieldChannelType)
	}
	if m.channel_value != nil {
		fields = append(fields, contactchannel.FieldChannelValue)
	}
	if m.is_primary != nil {
		fields = append(fields, contactchannel.FieldIsPrimary)
	}
	if m.secured != nil {
		fields = append(fields, contactchannel.FieldSecured)
	}
	if m.created_at != nil {
		fields = append(fields, contactchannel.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contactchannel.FieldContactID:
		return m.ContactID()
	case contactchannel.FieldChannelType:
		return m.ChannelType()
	case contactchannel.FieldChannelValue:
		return m.ChannelValue()
	case contactchannel.FieldIsPrimary:
		return m.IsPrimary()
	case contactchannel.FieldSecured:
		return m.Secured()
	case contactchannel.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contactchannel.FieldContactID:
		return m.OldContactID(ctx)
	case contactchannel.FieldChannelType:
		return m.OldChannelType(ctx)
	case contactchannel.FieldChannelValue:
		return m.OldChannelValue(ctx)
	case contactchannel.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case contactchannel.FieldSecured:
		return m.OldSecured(ctx)
	case contactchannel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContactChannel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contactchannel.FieldContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case contactchannel.FieldChannelType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelType(v)
		return nil
	case contactchannel.FieldChannelValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelValue(v)
		return nil
	case contactchannel.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case contactchannel.FieldSecured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecured(v)
		return nil
	case contactchannel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContactChannel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContactChannel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactChannelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactChannelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContactChannel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactChannelMutation) ResetField(name string) error {
	switch name {
	case contactchannel.FieldContactID:
		m.ResetContactID()
		return nil
	case contactchannel.FieldChannelType:
		m.ResetChannelType()
		return nil
	case contactchannel.FieldChannelValue:
		m.ResetChannelValue()
		return nil
	case contactchannel.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case contactchannel.FieldSecured:
		m.ResetSecured()
		return nil
	case contactchannel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContactChannel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contact != nil {
		edges = append(edges, contactchannel.EdgeContact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contactchannel.EdgeContact:
		if id := m.contact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactChannelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontact {
		edges = append(edges, contactchannel.EdgeContact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case contactchannel.EdgeContact:
		return m.clearedcontact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactChannelMutation) ClearEdge(name string) error {
	switch name {
	case contactchannel.EdgeContact:
		m.ClearContact()
		return nil
	}
	return fmt.Errorf("unknown ContactChannel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactChannelMutation) ResetEdge(name string) error {
	switch name {
	case contactchannel.EdgeContact:
		m.ResetContact()
		return nil
	}
	return fmt.Errorf("unknown ContactChannel edge %s", name)
}

// InboxRecordMutation represents an operation that mutates the InboxRecord nodes in the graph.
type InboxRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	source_channel      *string
	source_message_id   *string
	payload             *map[string]interface{}
	ingested_at         *time.Time
	pipeline_request_id *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*InboxRecord, error)
	predicates          []predicate.InboxRecord
}

var _ ent.Mutation = (*InboxRecordMutation)(nil)

// inboxrecordOption allows management of the mutation configuration using functional options.
type inboxrecordOption func(*InboxRecordMutation)

// newInboxRecordMutation creates new mutation for the InboxRecord entity.
func newInboxRecordMutation(c config, op Op, opts ...inboxrecordOption) *InboxRecordMutation {
	m := &InboxRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeInboxRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboxRecordID sets the ID field of the mutation.
func withInboxRecordID(id string) inboxrecordOption {
	return func(m *InboxRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *InboxRecord
		)
		m.oldValue = func(ctx context.Context) (*InboxRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboxRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboxRecord sets the old InboxRecord of the mutation.
func withInboxRecord(node *InboxRecord) inboxrecordOption {
	return func(m *InboxRecordMutation) {
		m.oldValue = func(context.Context) (*InboxRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboxRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboxRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboxRecord entities.
func (m *InboxRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboxRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboxRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboxRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceChannel sets the "source_channel" field.
func (m *InboxRecordMutation) SetSourceChannel(s string) {
	m.source_channel = &s
}

// SourceChannel returns the value of the "source_channel" field in the mutation.
func (m *InboxRecordMutation) SourceChannel() (r string, exists bool) {
	v := m.source_channel
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChannel returns the old "source_channel" field's value of the InboxRecord entity.
// If the InboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxRecordMutation) OldSourceChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChannel: %w", err)
	}
	return oldValue.SourceChannel, nil
}

// ResetSourceChannel resets all changes to the "source_channel" field.
func (m *InboxRecordMutation) ResetSourceChannel() {
	m.source_channel = nil
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *InboxRecordMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *InboxRecordMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the InboxRecord entity.
// If the InboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxRecordMutation) OldSourceMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *InboxRecordMutation) ResetSourceMessageID() {
	m.source_message_id = nil
}

// SetPayload sets the "payload" field.
func (m *InboxRecordMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InboxRecordMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InboxRecord entity.
// If the InboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxRecordMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *InboxRecordMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[inboxrecord.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *InboxRecordMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[inboxrecord.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *InboxRecordMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, inboxrecord.FieldPayload)
}

// SetIngestedAt sets the "ingested_at" field.
func (m *InboxRecordMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *InboxRecordMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the InboxRecord entity.
// If the InboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxRecordMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *InboxRecordMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// SetPipelineRequestID sets the "pipeline_request_id" field.
func (m *InboxRecordMutation) SetPipelineRequestID(s string) {
	m.pipeline_request_id = &s
}

// PipelineRequestID returns the value of the "pipeline_request_id" field in the mutation.
func (m *InboxRecordMutation) PipelineRequestID() (r string, exists bool) {
	v := m.pipeline_request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineRequestID returns the old "pipeline_request_id" field's value of the InboxRecord entity.
// If the InboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxRecordMutation) OldPipelineRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineRequestID: %w", err)
	}
	return oldValue.PipelineRequestID, nil
}

// ClearPipelineRequestID clears the value of the "pipeline_request_id" field.
func (m *InboxRecordMutation) ClearPipelineRequestID() {
	m.pipeline_request_id = nil
	m.clearedFields[inboxrecord.FieldPipelineRequestID] = struct{}{}
}

// PipelineRequestIDCleared returns if the "pipeline_request_id" field was cleared in this mutation.
func (m *InboxRecordMutation) PipelineRequestIDCleared() bool {
	_, ok := m.clearedFields[inboxrecord.FieldPipelineRequestID]
	return ok
}

// ResetPipelineRequestID resets all changes to the "pipeline_request_id" field.
func (m *InboxRecordMutation) ResetPipelineRequestID() {
	m.pipeline_request_id = nil
	delete(m.clearedFields, inboxrecord.FieldPipelineRequestID)
}

// Where appends a list predicates to the InboxRecordMutation builder.
func (m *InboxRecordMutation) Where(ps ...predicate.InboxRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboxRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboxRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboxRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboxRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboxRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboxRecord).
func (m *InboxRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboxRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.source_channel != nil {
		fields = append(fields, inboxrecord.FieldSourceChannel)
	}
	if m.source_message_id != nil {
		fields = append(fields, inboxrecord.FieldSourceMessageID)
	}
	if m.payload != nil {
		fields = append(fields, inboxrecord.FieldPayload)
	}
	if m.ingested_at != nil {
		fields = append(fields, inboxrecord.FieldIngestedAt)
	}
	if m.pipeline_request_id != nil {
		fields = append(fields, inboxrecord.FieldPipelineRequestID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboxRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboxrecord.FieldSourceChannel:
		return m.SourceChannel()
	case inboxrecord.FieldSourceMessageID:
		return m.SourceMessageID()
	case inboxrecord.FieldPayload:
		return m.Payload()
	case inboxrecord.FieldIngestedAt:
		return m.IngestedAt()
	case inboxrecord.FieldPipelineRequestID:
		return m.PipelineRequestID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboxRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboxrecord.FieldSourceChannel:
		return m.OldSourceChannel(ctx)
	case inboxrecord.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case inboxrecord.FieldPayload:
		return m.OldPayload(ctx)
	case inboxrecord.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	case inboxrecord.FieldPipelineRequestID:
		return m.OldPipelineRequestID(ctx)
	}
	return nil, fmt.Errorf("unknown InboxRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboxrecord.FieldSourceChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChannel(v)
		return nil
	case inboxrecord.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case inboxrecord.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case inboxrecord.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	case inboxrecord.FieldPipelineRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineRequestID(v)
		return nil
	}
	return fmt.Errorf("unknown InboxRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboxRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboxRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InboxRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboxRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboxrecord.FieldPayload) {
		fields = append(fields, inboxrecord.FieldPayload)
	}
	if m.FieldCleared(inboxrecord.FieldPipelineRequestID) {
		fields = append(fields, inboxrecord.FieldPipelineRequestID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboxRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboxRecordMutation) ClearField(name string) error {
	switch name {
	case inboxrecord.FieldPayload:
		m.ClearPayload()
		return nil
	case inboxrecord.FieldPipelineRequestID:
		m.ClearPipelineRequestID()
		return nil
	}
	return fmt.Errorf("unknown InboxRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboxRecordMutation) ResetField(name string) error {
	switch name {
	case inboxrecord.FieldSourceChannel:
		m.ResetSourceChannel()
		return nil
	case inboxrecord.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case inboxrecord.FieldPayload:
		m.ResetPayload()
		return nil
	case inboxrecord.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	case inboxrecord.FieldPipelineRequestID:
		m.ResetPipelineRequestID()
		return nil
	}
	return fmt.Errorf("unknown InboxRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboxRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboxRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboxRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboxRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboxRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboxRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboxRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InboxRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboxRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InboxRecord edge %s", name)
}

// KVEntryMutation represents an operation that mutates the KVEntry nodes in the graph.
type KVEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*KVEntry, error)
	predicates    []predicate.KVEntry
}

var _ ent.Mutation = (*KVEntryMutation)(nil)

// kventryOption allows management of the mutation configuration using functional options.
type kventryOption func(*KVEntryMutation)

// newKVEntryMutation creates new mutation for the KVEntry entity.
func newKVEntryMutation(c config, op Op, opts ...kventryOption) *KVEntryMutation {
	m := &KVEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeKVEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKVEntryID sets the ID field of the mutation.
func withKVEntryID(id int) kventryOption {
	return func(m *KVEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *KVEntry
		)
		m.oldValue = func(ctx context.Context) (*KVEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KVEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKVEntry sets the old KVEntry of the mutation.
func withKVEntry(node *KVEntry) kventryOption {
	return func(m *KVEntryMutation) {
		m.oldValue = func(context.Context) (*KVEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KVEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KVEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KVEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KVEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KVEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *KVEntryMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *KVEntryMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the KVEntry entity.
// If the KVEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KVEntryMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *KVEntryMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *KVEntryMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *KVEntryMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the KVEntry entity.
// If the KVEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KVEntryMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *KVEntryMutation) ClearValue() {
	m.value = nil
	m.clearedFields[kventry.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *KVEntryMutation) ValueCleared() bool {
	_, ok := m.clearedFields[kventry.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *KVEntryMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, kventry.FieldValue)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KVEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KVEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KVEntry entity.
// If the KVEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KVEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KVEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the KVEntryMutation builder.
func (m *KVEntryMutation) Where(ps ...predicate.KVEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KVEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KVEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KVEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KVEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KVEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KVEntry).
func (m *KVEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KVEntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, kventry.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, kventry.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, kventry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KVEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case kventry.FieldKey:
		return m.Key()
	case kventry.FieldValue:
		return m.Value()
	case kventry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KVEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case kventry.FieldKey:
		return m.OldKey(ctx)
	case kventry.FieldValue:
		return m.OldValue(ctx)
	case kventry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KVEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KVEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case kventry.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case kventry.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case kventry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KVEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KVEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KVEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KVEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KVEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KVEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(kventry.FieldValue) {
		fields = append(fields, kventry.FieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KVEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KVEntryMutation) ClearField(name string) error {
	switch name {
	case kventry.FieldValue:
		m.ClearValue()
		return nil
	}
	return fmt.Errorf("unknown KVEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KVEntryMutation) ResetField(name string) error {
	switch name {
	case kventry.FieldKey:
		m.ResetKey()
		return nil
	case kventry.FieldValue:
		m.ResetValue()
		return nil
	case kventry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown KVEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KVEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KVEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KVEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KVEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KVEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KVEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KVEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KVEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KVEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KVEntry edge %s", name)
}

// PendingActionMutation represents an operation that mutates the PendingAction nodes in the graph.
type PendingActionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tool_name            *string
	tool_args            *map[string]interface{}
	status               *pendingaction.Status
	requested_at         *time.Time
	expires_at           *time.Time
	decided_by           *string
	decided_at           *time.Time
	execution_result     **models.ExecutionResult
	rule_id              *string
	agent_summary        *string
	session_id           *string
	risk_tier            *pendingaction.RiskTier
	needs_reconciliation *bool
	dispatch_epoch       *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PendingAction, error)
	predicates           []predicate.PendingAction
}

var _ ent.Mutation = (*PendingActionMutation)(nil)

// pendingactionOption allows management of the mutation configuration using functional options.
type pendingactionOption func(*PendingActionMutation)

// newPendingActionMutation creates new mutation for the PendingAction entity.
func newPendingActionMutation(c config, op Op, opts ...pendingactionOption) *PendingActionMutation {
	m := &PendingActionMutation{
		config:        c,
		op:            op,
		typ:           TypePendingAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingActionID sets the ID field of the mutation.
func withPendingActionID(id string) pendingactionOption {
	return func(m *PendingActionMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingAction
		)
		m.oldValue = func(ctx context.Context) (*PendingAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingAction sets the old PendingAction of the mutation.
func withPendingAction(node *PendingAction) pendingactionOption {
	return func(m *PendingActionMutation) {
		m.oldValue = func(context.Context) (*PendingAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingAction entities.
func (m *PendingActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToolName sets the "tool_name" field.
func (m *PendingActionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *PendingActionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *PendingActionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolArgs sets the "tool_args" field.
func (m *PendingActionMutation) SetToolArgs(value map[string]interface{}) {
	m.tool_args = &value
}

// ToolArgs returns the value of the "tool_args" field in the mutation.
func (m *PendingActionMutation) ToolArgs() (r map[string]interface{}, exists bool) {
	v := m.tool_args
	if v == nil {
		return
	}
	return *v, true
}

// OldToolArgs returns the old "tool_args" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldToolArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolArgs: %w", err)
	}
	return oldValue.ToolArgs, nil
}

// ResetToolArgs resets all changes to the "tool_args" field.
func (m *PendingActionMutation) ResetToolArgs() {
	m.tool_args = nil
}

// SetStatus sets the "status" field.
func (m *PendingActionMutation) SetStatus(pe pendingaction.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingActionMutation) Status() (r pendingaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldStatus(ctx context.Context) (v pendingaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingActionMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedAt sets the "requested_at" field.
func (m *PendingActionMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *PendingActionMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *PendingActionMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *PendingActionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PendingActionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PendingActionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *PendingActionMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *PendingActionMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *PendingActionMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[pendingaction.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *PendingActionMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *PendingActionMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, pendingaction.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *PendingActionMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *PendingActionMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *PendingActionMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[pendingaction.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *PendingActionMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *PendingActionMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, pendingaction.FieldDecidedAt)
}

// SetExecutionResult sets the "execution_result" field.
func (m *PendingActionMutation) SetExecutionResult(mr *models.ExecutionResult) {
	m.execution_result = &mr
}

// ExecutionResult returns the value of the "execution_result" field in the mutation.
func (m *PendingActionMutation) ExecutionResult() (r *models.ExecutionResult, exists bool) {
	v := m.execution_result
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionResult returns the old "execution_result" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldExecutionResult(ctx context.Context) (v *models.ExecutionResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionResult: %w", err)
	}
	return oldValue.ExecutionResult, nil
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (m *PendingActionMutation) ClearExecutionResult() {
	m.execution_result = nil
	m.clearedFields[pendingaction.FieldExecutionResult] = struct{}{}
}

// ExecutionResultCleared returns if the "execution_result" field was cleared in this mutation.
func (m *PendingActionMutation) ExecutionResultCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldExecutionResult]
	return ok
}

// ResetExecutionResult resets all changes to the "execution_result" field.
func (m *PendingActionMutation) ResetExecutionResult() {
	m.execution_result = nil
	delete(m.clearedFields, pendingaction.FieldExecutionResult)
}

// SetRuleID sets the "rule_id" field.
func (m *PendingActionMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *PendingActionMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldRuleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ClearRuleID clears the value of the "rule_id" field.
func (m *PendingActionMutation) ClearRuleID() {
	m.rule_id = nil
	m.clearedFields[pendingaction.FieldRuleID] = struct{}{}
}

// RuleIDCleared returns if the "rule_id" field was cleared in this mutation.
func (m *PendingActionMutation) RuleIDCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldRuleID]
	return ok
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *PendingActionMutation) ResetRuleID() {
	m.rule_id = nil
	delete(m.clearedFields, pendingaction.FieldRuleID)
}

// SetAgentSummary sets the "agent_summary" field.
func (m *PendingActionMutation) SetAgentSummary(s string) {
	m.agent_summary = &s
}

// AgentSummary returns the value of the "agent_summary" field in the mutation.
func (m *PendingActionMutation) AgentSummary() (r string, exists bool) {
	v := m.agent_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSummary returns the old "agent_summary" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldAgentSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSummary: %w", err)
	}
	return oldValue.AgentSummary, nil
}

// ClearAgentSummary clears the value of the "agent_summary" field.
func (m *PendingActionMutation) ClearAgentSummary() {
	m.agent_summary = nil
	m.clearedFields[pendingaction.FieldAgentSummary] = struct{}{}
}

// AgentSummaryCleared returns if the "agent_summary" field was cleared in this mutation.
func (m *PendingActionMutation) AgentSummaryCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldAgentSummary]
	return ok
}

// ResetAgentSummary resets all changes to the "agent_summary" field.
func (m *PendingActionMutation) ResetAgentSummary() {
	m.agent_summary = nil
	delete(m.clearedFields, pendingaction.FieldAgentSummary)
}

// SetSessionID sets the "session_id" field.
func (m *PendingActionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PendingActionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PendingActionMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[pendingaction.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PendingActionMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PendingActionMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, pendingaction.FieldSessionID)
}

// SetRiskTier sets the "risk_tier" field.
func (m *PendingActionMutation) SetRiskTier(pt pendingaction.RiskTier) {
	m.risk_tier = &pt
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *PendingActionMutation) RiskTier() (r pendingaction.RiskTier, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldRiskTier(ctx context.Context) (v pendingaction.RiskTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *PendingActionMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetNeedsReconciliation sets the "needs_reconciliation" field.
func (m *PendingActionMutation) SetNeedsReconciliation(b bool) {
	m.needs_reconciliation = &b
}

// NeedsReconciliation returns the value of the "needs_reconciliation" field in the mutation.
func (m *PendingActionMutation) NeedsReconciliation() (r bool, exists bool) {
	v := m.needs_reconciliation
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReconciliation returns the old "needs_reconciliation" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldNeedsReconciliation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReconciliation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReconciliation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReconciliation: %w", err)
	}
	return oldValue.NeedsReconciliation, nil
}

// ResetNeedsReconciliation resets all changes to the "needs_reconciliation" field.
func (m *PendingActionMutation) ResetNeedsReconciliation() {
	m.needs_reconciliation = nil
}

// SetDispatchEpoch sets the "dispatch_epoch" field.
func (m *PendingActionMutation) SetDispatchEpoch(s string) {
	m.dispatch_epoch = &s
}

// DispatchEpoch returns the value of the "dispatch_epoch" field in the mutation.
func (m *PendingActionMutation) DispatchEpoch() (r string, exists bool) {
	v := m.dispatch_epoch
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchEpoch returns the old "dispatch_epoch" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldDispatchEpoch(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchEpoch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchEpoch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchEpoch: %w", err)
	}
	return oldValue.DispatchEpoch, nil
}

// ClearDispatchEpoch clears the value of the "dispatch_epoch" field.
func (m *PendingActionMutation) ClearDispatchEpoch() {
	m.dispatch_epoch = nil
	m.clearedFields[pendingaction.FieldDispatchEpoch] = struct{}{}
}

// DispatchEpochCleared returns if the "dispatch_epoch" field was cleared in this mutation.
func (m *PendingActionMutation) DispatchEpochCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldDispatchEpoch]
	return ok
}

// ResetDispatchEpoch resets all changes to the "dispatch_epoch" field.
func (m *PendingActionMutation) ResetDispatchEpoch() {
	m.dispatch_epoch = nil
	delete(m.clearedFields, pendingaction.FieldDispatchEpoch)
}

// Where appends a list predicates to the PendingActionMutation builder.
func (m *PendingActionMutation) Where(ps ...predicate.PendingAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingAction).
func (m *PendingActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingActionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tool_name != nil {
		fields = append(fields, pendingaction.FieldToolName)
	}
	if m.tool_args != nil {
		fields = append(fields, pendingaction.FieldToolArgs)
	}
	if m.status != nil {
		fields = append(fields, pendingaction.FieldStatus)
	}
	if m.requested_at != nil {
		fields = append(fields, pendingaction.FieldRequestedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, pendingaction.FieldExpiresAt)
	}
	if m.decided_by != nil {
		fields = append(fields, pendingaction.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, pendingaction.FieldDecidedAt)
	}
	if m.execution_result != nil {
		fields = append(fields, pendingaction.FieldExecutionResult)
	}
	if m.rule_id != nil {
		fields = append(fields, pendingaction.FieldRuleID)
	}
	if m.agent_summary != nil {
		fields = append(fields, pendingaction.FieldAgentSummary)
	}
	if m.session_id != nil {
		fields = append(fields, pendingaction.FieldSessionID)
	}
	if m.risk_tier != nil {
		fields = append(fields, pendingaction.FieldRiskTier)
	}
	if m.needs_reconciliation != nil {
		fields = append(fields, pendingaction.FieldNeedsReconciliation)
	}
	if m.dispatch_epoch != nil {
		fields = append(fields, pendingaction.FieldDispatchEpoch)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingaction.FieldToolName:
		return m.ToolName()
	case pendingaction.FieldToolArgs:
		return m.ToolArgs()
	case pendingaction.FieldStatus:
		return m.Status()
	case pendingaction.FieldRequestedAt:
		return m.RequestedAt()
	case pendingaction.FieldExpiresAt:
		return m.ExpiresAt()
	case pendingaction.FieldDecidedBy:
		return m.DecidedBy()
	case pendingaction.FieldDecidedAt:
		return m.DecidedAt()
	case pendingaction.FieldExecutionResult:
		return m.ExecutionResult()
	case pendingaction.FieldRuleID:
		return m.RuleID()
	case pendingaction.FieldAgentSummary:
		return m.AgentSummary()
	case pendingaction.FieldSessionID:
		return m.SessionID()
	case pendingaction.FieldRiskTier:
		return m.RiskTier()
	case pendingaction.FieldNeedsReconciliation:
		return m.NeedsReconciliation()
	case pendingaction.FieldDispatchEpoch:
		return m.DispatchEpoch()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingaction.FieldToolName:
		return m.OldToolName(ctx)
	case pendingaction.FieldToolArgs:
		return m.OldToolArgs(ctx)
	case pendingaction.FieldStatus:
		return m.OldStatus(ctx)
	case pendingaction.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case pendingaction.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case pendingaction.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case pendingaction.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case pendingaction.FieldExecutionResult:
		return m.OldExecutionResult(ctx)
	case pendingaction.FieldRuleID:
		return m.OldRuleID(ctx)
	case pendingaction.FieldAgentSummary:
		return m.OldAgentSummary(ctx)
	case pendingaction.FieldSessionID:
		return m.OldSessionID(ctx)
	case pendingaction.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case pendingaction.FieldNeedsReconciliation:
		return m.OldNeedsReconciliation(ctx)
	case pendingaction.FieldDispatchEpoch:
		return m.OldDispatchEpoch(ctx)
	}
	return nil, fmt.Errorf("unknown PendingAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingaction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case pendingaction.FieldToolArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolArgs(v)
		return nil
	case pendingaction.FieldStatus:
		v, ok := value.(pendingaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendingaction.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case pendingaction.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case pendingaction.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case pendingaction.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case pendingaction.FieldExecutionResult:
		v, ok := value.(*models.ExecutionResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionResult(v)
		return nil
	case pendingaction.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case pendingaction.FieldAgentSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSummary(v)
		return nil
	case pendingaction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pendingaction.FieldRiskTier:
		v, ok := value.(pendingaction.RiskTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case pendingaction.FieldNeedsReconciliation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReconciliation(v)
		return nil
	case pendingaction.FieldDispatchEpoch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchEpoch(v)
		return nil
	}
	return fmt.Errorf("unknown PendingAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PendingAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingaction.FieldDecidedBy) {
		fields = append(fields, pendingaction.FieldDecidedBy)
	}
	if m.FieldCleared(pendingaction.FieldDecidedAt) {
		fields = append(fields, pendingaction.FieldDecidedAt)
	}
	if m.FieldCleared(pendingaction.FieldExecutionResult) {
		fields = append(fields, pendingaction.FieldExecutionResult)
	}
	if m.FieldCleared(pendingaction.FieldRuleID) {
		fields = append(fields, pendingaction.FieldRuleID)
	}
	if m.FieldCleared(pendingaction.FieldAgentSummary) {
		fields = append(fields, pendingaction.FieldAgentSummary)
	}
	if m.FieldCleared(pendingaction.FieldSessionID) {
		fields = append(fields, pendingaction.FieldSessionID)
	}
	if m.FieldCleared(pendingaction.FieldDispatchEpoch) {
		fields = append(fields, pendingaction.FieldDispatchEpoch)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingActionMutation) ClearField(name string) error {
	switch name {
	case pendingaction.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case pendingaction.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case pendingaction.FieldExecutionResult:
		m.ClearExecutionResult()
		return nil
	case pendingaction.FieldRuleID:
		m.ClearRuleID()
		return nil
	case pendingaction.FieldAgentSummary:
		m.ClearAgentSummary()
		return nil
	case pendingaction.FieldSessionID:
		m.ClearSessionID()
		return nil
	case pendingaction.FieldDispatchEpoch:
		m.ClearDispatchEpoch()
		return nil
	}
	return fmt.Errorf("unknown PendingAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingActionMutation) ResetField(name string) error {
	switch name {
	case pendingaction.FieldToolName:
		m.ResetToolName()
		return nil
	case pendingaction.FieldToolArgs:
		m.ResetToolArgs()
		return nil
	case pendingaction.FieldStatus:
		m.ResetStatus()
		return nil
	case pendingaction.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case pendingaction.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case pendingaction.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case pendingaction.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case pendingaction.FieldExecutionResult:
		m.ResetExecutionResult()
		return nil
	case pendingaction.FieldRuleID:
		m.ResetRuleID()
		return nil
	case pendingaction.FieldAgentSummary:
		m.ResetAgentSummary()
		return nil
	case pendingaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pendingaction.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case pendingaction.FieldNeedsReconciliation:
		m.ResetNeedsReconciliation()
		return nil
	case pendingaction.FieldDispatchEpoch:
		m.ResetDispatchEpoch()
		return nil
	}
	return fmt.Errorf("unknown PendingAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingAction edge %s", name)
}

// ScheduledTaskMutation represents an operation that mutates the ScheduledTask nodes in the graph.
type ScheduledTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	cron          *string
	start_at      *time.Time
	prompt        *string
	source        *scheduledtask.Source
	enabled       *bool
	last_run_at   *time.Time
	last_result   *string
	next_run_at   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ScheduledTask, error)
	predicates    []predicate.ScheduledTask
}

var _ ent.Mutation = (*ScheduledTaskMutation)(nil)

// scheduledtaskOption allows management of the mutation configuration using functional options.
type scheduledtaskOption func(*ScheduledTaskMutation)

// newScheduledTaskMutation creates new mutation for the ScheduledTask entity.
func newScheduledTaskMutation(c config, op Op, opts ...scheduledtaskOption) *ScheduledTaskMutation {
	m := &ScheduledTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledTaskID sets the ID field of the mutation.
func withScheduledTaskID(id string) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledTask
		)
		m.oldValue = func(ctx context.Context) (*ScheduledTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledTask sets the old ScheduledTask of the mutation.
func withScheduledTask(node *ScheduledTask) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		m.oldValue = func(context.Context) (*ScheduledTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledTask entities.
func (m *ScheduledTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ScheduledTaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScheduledTaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScheduledTaskMutation) ResetName() {
	m.name = nil
}

// SetCron sets the "cron" field.
func (m *ScheduledTaskMutation) SetCron(s string) {
	m.cron = &s
}

// Cron returns the value of the "cron" field in the mutation.
func (m *ScheduledTaskMutation) Cron() (r string, exists bool) {
	v := m.cron
	if v == nil {
		return
	}
	return *v, true
}

// OldCron returns the old "cron" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCron(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCron is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCron requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCron: %w", err)
	}
	return oldValue.Cron, nil
}

// ClearCron clears the value of the "cron" field.
func (m *ScheduledTaskMutation) ClearCron() {
	m.cron = nil
	m.clearedFields[scheduledtask.FieldCron] = struct{}{}
}

// CronCleared returns if the "cron" field was cleared in this mutation.
func (m *ScheduledTaskMutation) CronCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldCron]
	return ok
}

// ResetCron resets all changes to the "cron" field.
func (m *ScheduledTaskMutation) ResetCron() {
	m.cron = nil
	delete(m.clearedFields, scheduledtask.FieldCron)
}

// SetStartAt sets the "start_at" field.
func (m *ScheduledTaskMutation) SetStartAt(t time.Time) {
	m.start_at = &t
}

// StartAt returns the value of the "start_at" field in the mutation.
func (m *ScheduledTaskMutation) StartAt() (r time.Time, exists bool) {
	v := m.start_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartAt returns the old "start_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldStartAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartAt: %w", err)
	}
	return oldValue.StartAt, nil
}

// ClearStartAt clears the value of the "start_at" field.
func (m *ScheduledTaskMutation) ClearStartAt() {
	m.start_at = nil
	m.clearedFields[scheduledtask.FieldStartAt] = struct{}{}
}

// StartAtCleared returns if the "start_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) StartAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldStartAt]
	return ok
}

// ResetStartAt resets all changes to the "start_at" field.
func (m *ScheduledTaskMutation) ResetStartAt() {
	m.start_at = nil
	delete(m.clearedFields, scheduledtask.FieldStartAt)
}

// SetPrompt sets the "prompt" field.
func (m *ScheduledTaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ScheduledTaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ScheduledTaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetSource sets the "source" field.
func (m *ScheduledTaskMutation) SetSource(s scheduledtask.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ScheduledTaskMutation) Source() (r scheduledtask.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldSource(ctx context.Context) (v scheduledtask.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ScheduledTaskMutation) ResetSource() {
	m.source = nil
}

// SetEnabled sets the "enabled" field.
func (m *ScheduledTaskMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduledTaskMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduledTaskMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduledTaskMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduledTaskMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduledTaskMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[scheduledtask.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduledTaskMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldLastRunAt)
}

// SetLastResult sets the "last_result" field.
func (m *ScheduledTaskMutation) SetLastResult(s string) {
	m.last_result = &s
}

// LastResult returns the value of the "last_result" field in the mutation.
func (m *ScheduledTaskMutation) LastResult() (r string, exists bool) {
	v := m.last_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResult returns the old "last_result" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResult: %w", err)
	}
	return oldValue.LastResult, nil
}

// ClearLastResult clears the value of the "last_result" field.
func (m *ScheduledTaskMutation) ClearLastResult() {
	m.last_result = nil
	m.clearedFields[scheduledtask.FieldLastResult] = struct{}{}
}

// LastResultCleared returns if the "last_result" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastResultCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastResult]
	return ok
}

// ResetLastResult resets all changes to the "last_result" field.
func (m *ScheduledTaskMutation) ResetLastResult() {
	m.last_result = nil
	delete(m.clearedFields, scheduledtask.FieldLastResult)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *ScheduledTaskMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *ScheduledTaskMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *ScheduledTaskMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[scheduledtask.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *ScheduledTaskMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldNextRunAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScheduledTaskMutation builder.
func (m *ScheduledTaskMutation) Where(ps ...predicate.ScheduledTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledTask).
func (m *ScheduledTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledTaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, scheduledtask.FieldName)
	}
	if m.cron != nil {
		fields = append(fields, scheduledtask.FieldCron)
	}
	if m.start_at != nil {
		fields = append(fields, scheduledtask.FieldStartAt)
	}
	if m.prompt != nil {
		fields = append(fields, scheduledtask.FieldPrompt)
	}
	if m.source != nil {
		fields = append(fields, scheduledtask.FieldSource)
	}
	if m.enabled != nil {
		fields = append(fields, scheduledtask.FieldEnabled)
	}
	if m.last_run_at != nil {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.last_result != nil {
		fields = append(fields, scheduledtask.FieldLastResult)
	}
	if m.next_run_at != nil {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledtask.FieldName:
		return m.Name()
	case scheduledtask.FieldCron:
		return m.Cron()
	case scheduledtask.FieldStartAt:
		return m.StartAt()
	case scheduledtask.FieldPrompt:
		return m.Prompt()
	case scheduledtask.FieldSource:
		return m.Source()
	case scheduledtask.FieldEnabled:
		return m.Enabled()
	case scheduledtask.FieldLastRunAt:
		return m.LastRunAt()
	case scheduledtask.FieldLastResult:
		return m.LastResult()
	case scheduledtask.FieldNextRunAt:
		return m.NextRunAt()
	case scheduledtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledtask.FieldName:
		return m.OldName(ctx)
	case scheduledtask.FieldCron:
		return m.OldCron(ctx)
	case scheduledtask.FieldStartAt:
		return m.OldStartAt(ctx)
	case scheduledtask.FieldPrompt:
		return m.OldPrompt(ctx)
	case scheduledtask.FieldSource:
		return m.OldSource(ctx)
	case scheduledtask.FieldEnabled:
		return m.OldEnabled(ctx)
	case scheduledtask.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case scheduledtask.FieldLastResult:
		return m.OldLastResult(ctx)
	case scheduledtask.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case scheduledtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledtask.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scheduledtask.FieldCron:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCron(v)
		return nil
	case scheduledtask.FieldStartAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartAt(v)
		return nil
	case scheduledtask.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case scheduledtask.FieldSource:
		v, ok := value.(scheduledtask.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case scheduledtask.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case scheduledtask.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case scheduledtask.FieldLastResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResult(v)
		return nil
	case scheduledtask.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case scheduledtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledtask.FieldCron) {
		fields = append(fields, scheduledtask.FieldCron)
	}
	if m.FieldCleared(scheduledtask.FieldStartAt) {
		fields = append(fields, scheduledtask.FieldStartAt)
	}
	if m.FieldCleared(scheduledtask.FieldLastRunAt) {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.FieldCleared(scheduledtask.FieldLastResult) {
		fields = append(fields, scheduledtask.FieldLastResult)
	}
	if m.FieldCleared(scheduledtask.FieldNextRunAt) {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ClearField(name string) error {
	switch name {
	case scheduledtask.FieldCron:
		m.ClearCron()
		return nil
	case scheduledtask.FieldStartAt:
		m.ClearStartAt()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case scheduledtask.FieldLastResult:
		m.ClearLastResult()
		return nil
	case scheduledtask.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ResetField(name string) error {
	switch name {
	case scheduledtask.FieldName:
		m.ResetName()
		return nil
	case scheduledtask.FieldCron:
		m.ResetCron()
		return nil
	case scheduledtask.FieldStartAt:
		m.ResetStartAt()
		return nil
	case scheduledtask.FieldPrompt:
		m.ResetPrompt()
		return nil
	case scheduledtask.FieldSource:
		m.ResetSource()
		return nil
	case scheduledtask.FieldEnabled:
		m.ResetEnabled()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case scheduledtask.FieldLastResult:
		m.ResetLastResult()
		return nil
	case scheduledtask.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case scheduledtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledTask edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	butler         *string
	trigger_kind   *session.TriggerKind
	started_at     *time.Time
	ended_at       *time.Time
	input_prompt   *string
	output_summary *string
	error          *string
	cost           *float64
	addcost        *float64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Session, error)
	predicates     []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButler sets the "butler" field.
func (m *SessionMutation) SetButler(s string) {
	m.butler = &s
}

// Butler returns the value of the "butler" field in the mutation.
func (m *SessionMutation) Butler() (r string, exists bool) {
	v := m.butler
	if v == nil {
		return
	}
	return *v, true
}

// OldButler returns the old "butler" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldButler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButler: %w", err)
	}
	return oldValue.Butler, nil
}

// ResetButler resets all changes to the "butler" field.
func (m *SessionMutation) ResetButler() {
	m.butler = nil
}

// SetTriggerKind sets the "trigger_kind" field.
func (m *SessionMutation) SetTriggerKind(sk session.TriggerKind) {
	m.trigger_kind = &sk
}

// TriggerKind returns the value of the "trigger_kind" field in the mutation.
func (m *SessionMutation) TriggerKind() (r session.TriggerKind, exists bool) {
	v := m.trigger_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerKind returns the old "trigger_kind" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTriggerKind(ctx context.Context) (v session.TriggerKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerKind: %w", err)
	}
	return oldValue.TriggerKind, nil
}

// ResetTriggerKind resets all changes to the "trigger_kind" field.
func (m *SessionMutation) ResetTriggerKind() {
	m.trigger_kind = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetInputPrompt sets the "input_prompt" field.
func (m *SessionMutation) SetInputPrompt(s string) {
	m.input_prompt = &s
}

// InputPrompt returns the value of the "input_prompt" field in the mutation.
func (m *SessionMutation) InputPrompt() (r string, exists bool) {
	v := m.input_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldInputPrompt returns the old "input_prompt" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInputPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputPrompt: %w", err)
	}
	return oldValue.InputPrompt, nil
}

// ResetInputPrompt resets all changes to the "input_prompt" field.
func (m *SessionMutation) ResetInputPrompt() {
	m.input_prompt = nil
}

// SetOutputSummary sets the "output_summary" field.
func (m *SessionMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *SessionMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldOutputSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *SessionMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[session.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *SessionMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *SessionMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, session.FieldOutputSummary)
}

// SetError sets the "error" field.
func (m *SessionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *SessionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SessionMutation) ClearError() {
	m.error = nil
	m.clearedFields[session.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SessionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[session.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SessionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, session.FieldError)
}

// SetCost sets the "cost" field.
func (m *SessionMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *SessionMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *SessionMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *SessionMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *SessionMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[session.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *SessionMutation) CostCleared() bool {
	_, ok := m.clearedFields[session.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *SessionMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, session.FieldCost)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.butler != nil {
		fields = append(fields, session.FieldButler)
	}
	if m.trigger_kind != nil {
		fields = append(fields, session.FieldTriggerKind)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.input_prompt != nil {
		fields = append(fields, session.FieldInputPrompt)
	}
	if m.output_summary != nil {
		fields = append(fields, session.FieldOutputSummary)
	}
	if m.error != nil {
		fields = append(fields, session.FieldError)
	}
	if m.cost != nil {
		fields = append(fields, session.FieldCost)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldButler:
		return m.Butler()
	case session.FieldTriggerKind:
		return m.TriggerKind()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	case session.FieldInputPrompt:
		return m.InputPrompt()
	case session.FieldOutputSummary:
		return m.OutputSummary()
	case session.FieldError:
		return m.Error()
	case session.FieldCost:
		return m.Cost()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldButler:
		return m.OldButler(ctx)
	case session.FieldTriggerKind:
		return m.OldTriggerKind(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case session.FieldInputPrompt:
		return m.OldInputPrompt(ctx)
	case session.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case session.FieldError:
		return m.OldError(ctx)
	case session.FieldCost:
		return m.OldCost(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldButler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButler(v)
		return nil
	case session.FieldTriggerKind:
		v, ok := value.(session.TriggerKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerKind(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case session.FieldInputPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputPrompt(v)
		return nil
	case session.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case session.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case session.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addcost != nil {
		fields = append(fields, session.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.FieldCleared(session.FieldOutputSummary) {
		fields = append(fields, session.FieldOutputSummary)
	}
	if m.FieldCleared(session.FieldError) {
		fields = append(fields, session.FieldError)
	}
	if m.FieldCleared(session.FieldCost) {
		fields = append(fields, session.FieldCost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case session.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case session.FieldError:
		m.ClearError()
		return nil
	case session.FieldCost:
		m.ClearCost()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldButler:
		m.ResetButler()
		return nil
	case session.FieldTriggerKind:
		m.ResetTriggerKind()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case session.FieldInputPrompt:
		m.ResetInputPrompt()
		return nil
	case session.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case session.FieldError:
		m.ResetError()
		return nil
	case session.FieldCost:
		m.ResetCost()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}
