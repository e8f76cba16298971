// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/inboxrecord"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// InboxRecordUpdate is the builder for updating InboxRecord entities.
type InboxRecordUpdate struct {
	config
	hooks    []Hook
	mutation *InboxRecordMutation
}

// Where appends a list predicates to the InboxRecordUpdate builder.
func (_u *InboxRecordUpdate) Where(ps ...predicate.InboxRecord) *InboxRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InboxRecordUpdate) SetPayload(v map[string]interface{}) *InboxRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *InboxRecordUpdate) ClearPayload() *InboxRecordUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetPipelineRequestID sets the "pipeline_request_id" field.
func (_u *InboxRecordUpdate) SetPipelineRequestID(v string) *InboxRecordUpdate {
	_u.mutation.SetPipelineRequestID(v)
	return _u
}

// SetNillablePipelineRequestID sets the "pipeline_request_id" field if the given value is not nil.
func (_u *InboxRecordUpdate) SetNillablePipelineRequestID(v *string) *InboxRecordUpdate {
	if v != nil {
		_u.SetPipelineRequestID(*v)
	}
	return _u
}

// ClearPipelineRequestID clears the value of the "pipeline_request_id" field.
func (_u *InboxRecordUpdate) ClearPipelineRequestID() *InboxRecordUpdate {
	_u.mutation.ClearPipelineRequestID()
	return _u
}

// Mutation returns the InboxRecordMutation object of the builder.
func (_u *InboxRecordUpdate) Mutation() *InboxRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboxRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboxRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InboxRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(inboxrecord.Table, inboxrecord.Columns, sqlgraph.NewFieldSpec(inboxrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(inboxrecord.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inboxrecord.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.PipelineRequestID(); ok {
		_spec.SetField(inboxrecord.FieldPipelineRequestID, field.TypeString, value)
	}
	if _u.mutation.PipelineRequestIDCleared() {
		_spec.ClearField(inboxrecord.FieldPipelineRequestID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboxRecordUpdateOne is the builder for updating a single InboxRecord entity.
type InboxRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboxRecordMutation
}

// SetPayload sets the "payload" field.
func (_u *InboxRecordUpdateOne) SetPayload(v map[string]interface{}) *InboxRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *InboxRecordUpdateOne) ClearPayload() *InboxRecordUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetPipelineRequestID sets the "pipeline_request_id" field.
func (_u *InboxRecordUpdateOne) SetPipelineRequestID(v string) *InboxRecordUpdateOne {
	_u.mutation.SetPipelineRequestID(v)
	return _u
}

// SetNillablePipelineRequestID sets the "pipeline_request_id" field if the given value is not nil.
func (_u *InboxRecordUpdateOne) SetNillablePipelineRequestID(v *string) *InboxRecordUpdateOne {
	if v != nil {
		_u.SetPipelineRequestID(*v)
	}
	return _u
}

// ClearPipelineRequestID clears the value of the "pipeline_request_id" field.
func (_u *InboxRecordUpdateOne) ClearPipelineRequestID() *InboxRecordUpdateOne {
	_u.mutation.ClearPipelineRequestID()
	return _u
}

// Mutation returns the InboxRecordMutation object of the builder.
func (_u *InboxRecordUpdateOne) Mutation() *InboxRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the InboxRecordUpdate builder.
func (_u *InboxRecordUpdateOne) Where(ps ...predicate.InboxRecord) *InboxRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboxRecordUpdateOne) Select(field string, fields ...string) *InboxRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboxRecord entity.
func (_u *InboxRecordUpdateOne) Save(ctx context.Context) (*InboxRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxRecordUpdateOne) SaveX(ctx context.Context) *InboxRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboxRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InboxRecordUpdateOne) sqlSave(ctx context.Context) (_node *InboxRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(inboxrecord.Table, inboxrecord.Columns, sqlgraph.NewFieldSpec(inboxrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboxRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboxrecord.FieldID)
		for _, f := range fields {
			if !inboxrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboxrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(inboxrecord.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inboxrecord.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.PipelineRequestID(); ok {
		_spec.SetField(inboxrecord.FieldPipelineRequestID, field.TypeString, value)
	}
	if _u.mutation.PipelineRequestIDCleared() {
		_spec.ClearField(inboxrecord.FieldPipelineRequestID, field.TypeString)
	}
	_node = &InboxRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
