// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ApprovalEventUpdate is the builder for updating ApprovalEvent entities.
type ApprovalEventUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalEventMutation
}

// Where appends a list predicates to the ApprovalEventUpdate builder.
func (_u *ApprovalEventUpdate) Where(ps ...predicate.ApprovalEvent) *ApprovalEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ApprovalEventMutation object of the builder.
func (_u *ApprovalEventUpdate) Mutation() *ApprovalEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApprovalEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(approvalevent.Table, approvalevent.Columns, sqlgraph.NewFieldSpec(approvalevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActionIDCleared() {
		_spec.ClearField(approvalevent.FieldActionID, field.TypeString)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(approvalevent.FieldRuleID, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(approvalevent.FieldReason, field.TypeString)
	}
	if _u.mutation.PayloadMetadataCleared() {
		_spec.ClearField(approvalevent.FieldPayloadMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalEventUpdateOne is the builder for updating a single ApprovalEvent entity.
type ApprovalEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalEventMutation
}

// Mutation returns the ApprovalEventMutation object of the builder.
func (_u *ApprovalEventUpdateOne) Mutation() *ApprovalEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalEventUpdate builder.
func (_u *ApprovalEventUpdateOne) Where(ps ...predicate.ApprovalEvent) *ApprovalEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalEventUpdateOne) Select(field string, fields ...string) *ApprovalEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalEvent entity.
func (_u *ApprovalEventUpdateOne) Save(ctx context.Context) (*ApprovalEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalEventUpdateOne) SaveX(ctx context.Context) *ApprovalEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApprovalEventUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(approvalevent.Table, approvalevent.Columns, sqlgraph.NewFieldSpec(approvalevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalevent.FieldID)
		for _, f := range fields {
			if !approvalevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalevent.FieldID {
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
	if _u.mutation.ActionIDCleared() {
		_spec.ClearField(approvalevent.FieldActionID, field.TypeString)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(approvalevent.FieldRuleID, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(approvalevent.FieldReason, field.TypeString)
	}
	if _u.mutation.PayloadMetadataCleared() {
		_spec.ClearField(approvalevent.FieldPayloadMetadata, field.TypeJSON)
	}
	_node = &ApprovalEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
