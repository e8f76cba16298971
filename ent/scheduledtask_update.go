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
	"github.com/butlerhq/butlerd/ent/scheduledtask"
)

// ScheduledTaskUpdate is the builder for updating ScheduledTask entities.
type ScheduledTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdate) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduledTaskUpdate) SetName(v string) *ScheduledTaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableName(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduledTaskUpdate) SetCron(v string) *ScheduledTaskUpdate {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableCron(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// ClearCron clears the value of the "cron" field.
func (_u *ScheduledTaskUpdate) ClearCron() *ScheduledTaskUpdate {
	_u.mutation.ClearCron()
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *ScheduledTaskUpdate) SetStartAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableStartAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// ClearStartAt clears the value of the "start_at" field.
func (_u *ScheduledTaskUpdate) ClearStartAt() *ScheduledTaskUpdate {
	_u.mutation.ClearStartAt()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduledTaskUpdate) SetPrompt(v string) *ScheduledTaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillablePrompt(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScheduledTaskUpdate) SetSource(v scheduledtask.Source) *ScheduledTaskUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableSource(v *scheduledtask.Source) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledTaskUpdate) SetEnabled(v bool) *ScheduledTaskUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableEnabled(v *bool) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdate) SetLastRunAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastRunAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdate) ClearLastRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *ScheduledTaskUpdate) SetLastResult(v string) *ScheduledTaskUpdate {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastResult(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *ScheduledTaskUpdate) ClearLastResult() *ScheduledTaskUpdate {
	_u.mutation.ClearLastResult()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledTaskUpdate) SetNextRunAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableNextRunAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduledTaskUpdate) ClearNextRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdate) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := scheduledtask.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(scheduledtask.FieldCron, field.TypeString, value)
	}
	if _u.mutation.CronCleared() {
		_spec.ClearField(scheduledtask.FieldCron, field.TypeString)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(scheduledtask.FieldStartAt, field.TypeTime, value)
	}
	if _u.mutation.StartAtCleared() {
		_spec.ClearField(scheduledtask.FieldStartAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scheduledtask.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(scheduledtask.FieldLastResult, field.TypeString, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(scheduledtask.FieldLastResult, field.TypeString)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldNextRunAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledTaskUpdateOne is the builder for updating a single ScheduledTask entity.
type ScheduledTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// SetName sets the "name" field.
func (_u *ScheduledTaskUpdateOne) SetName(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableName(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduledTaskUpdateOne) SetCron(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableCron(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// ClearCron clears the value of the "cron" field.
func (_u *ScheduledTaskUpdateOne) ClearCron() *ScheduledTaskUpdateOne {
	_u.mutation.ClearCron()
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *ScheduledTaskUpdateOne) SetStartAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableStartAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// ClearStartAt clears the value of the "start_at" field.
func (_u *ScheduledTaskUpdateOne) ClearStartAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearStartAt()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduledTaskUpdateOne) SetPrompt(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillablePrompt(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScheduledTaskUpdateOne) SetSource(v scheduledtask.Source) *ScheduledTaskUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableSource(v *scheduledtask.Source) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledTaskUpdateOne) SetEnabled(v bool) *ScheduledTaskUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableEnabled(v *bool) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetLastRunAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastRunAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearLastRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *ScheduledTaskUpdateOne) SetLastResult(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastResult(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *ScheduledTaskUpdateOne) ClearLastResult() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastResult()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetNextRunAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableNextRunAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearNextRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdateOne) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdateOne) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledTaskUpdateOne) Select(field string, fields ...string) *ScheduledTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledTask entity.
func (_u *ScheduledTaskUpdateOne) Save(ctx context.Context) (*ScheduledTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) SaveX(ctx context.Context) *ScheduledTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := scheduledtask.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledtask.FieldID)
		for _, f := range fields {
			if !scheduledtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledtask.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(scheduledtask.FieldCron, field.TypeString, value)
	}
	if _u.mutation.CronCleared() {
		_spec.ClearField(scheduledtask.FieldCron, field.TypeString)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(scheduledtask.FieldStartAt, field.TypeTime, value)
	}
	if _u.mutation.StartAtCleared() {
		_spec.ClearField(scheduledtask.FieldStartAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scheduledtask.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(scheduledtask.FieldLastResult, field.TypeString, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(scheduledtask.FieldLastResult, field.TypeString)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldNextRunAt, field.TypeTime)
	}
	_node = &ScheduledTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
