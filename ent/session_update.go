// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/predicate"
	"github.com/butlerhq/butlerd/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdate) SetEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdate) ClearEndedAt() *SessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetInputPrompt sets the "input_prompt" field.
func (_u *SessionUpdate) SetInputPrompt(v string) *SessionUpdate {
	_u.mutation.SetInputPrompt(v)
	return _u
}

// SetNillableInputPrompt sets the "input_prompt" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableInputPrompt(v *string) *SessionUpdate {
	if v != nil {
		_u.SetInputPrompt(*v)
	}
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *SessionUpdate) SetOutputSummary(v string) *SessionUpdate {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableOutputSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *SessionUpdate) ClearOutputSummary() *SessionUpdate {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetError sets the "error" field.
func (_u *SessionUpdate) SetError(v string) *SessionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableError(v *string) *SessionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SessionUpdate) ClearError() *SessionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetCost sets the "cost" field.
func (_u *SessionUpdate) SetCost(v float64) *SessionUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCost(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *SessionUpdate) AddCost(v float64) *SessionUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *SessionUpdate) ClearCost() *SessionUpdate {
	_u.mutation.ClearCost()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InputPrompt(); ok {
		_spec.SetField(session.FieldInputPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(session.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(session.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(session.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(session.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(session.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(session.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(session.FieldCost, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdateOne) SetEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdateOne) ClearEndedAt() *SessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetInputPrompt sets the "input_prompt" field.
func (_u *SessionUpdateOne) SetInputPrompt(v string) *SessionUpdateOne {
	_u.mutation.SetInputPrompt(v)
	return _u
}

// SetNillableInputPrompt sets the "input_prompt" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableInputPrompt(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetInputPrompt(*v)
	}
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *SessionUpdateOne) SetOutputSummary(v string) *SessionUpdateOne {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableOutputSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *SessionUpdateOne) ClearOutputSummary() *SessionUpdateOne {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetError sets the "error" field.
func (_u *SessionUpdateOne) SetError(v string) *SessionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableError(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SessionUpdateOne) ClearError() *SessionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetCost sets the "cost" field.
func (_u *SessionUpdateOne) SetCost(v float64) *SessionUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCost(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *SessionUpdateOne) AddCost(v float64) *SessionUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *SessionUpdateOne) ClearCost() *SessionUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.InputPrompt(); ok {
		_spec.SetField(session.FieldInputPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(session.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(session.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(session.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(session.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(session.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(session.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(session.FieldCost, field.TypeFloat64)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
