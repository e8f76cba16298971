// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
)

// ScheduledTaskCreate is the builder for creating a ScheduledTask entity.
type ScheduledTaskCreate struct {
	config
	mutation *ScheduledTaskMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScheduledTaskCreate) SetName(v string) *ScheduledTaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCron sets the "cron" field.
func (_c *ScheduledTaskCreate) SetCron(v string) *ScheduledTaskCreate {
	_c.mutation.SetCron(v)
	return _c
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableCron(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetCron(*v)
	}
	return _c
}

// SetStartAt sets the "start_at" field.
func (_c *ScheduledTaskCreate) SetStartAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetStartAt(v)
	return _c
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableStartAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetStartAt(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ScheduledTaskCreate) SetPrompt(v string) *ScheduledTaskCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ScheduledTaskCreate) SetSource(v scheduledtask.Source) *ScheduledTaskCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduledTaskCreate) SetEnabled(v bool) *ScheduledTaskCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableEnabled(v *bool) *ScheduledTaskCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduledTaskCreate) SetLastRunAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastRunAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetLastResult sets the "last_result" field.
func (_c *ScheduledTaskCreate) SetLastResult(v string) *ScheduledTaskCreate {
	_c.mutation.SetLastResult(v)
	return _c
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastResult(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastResult(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ScheduledTaskCreate) SetNextRunAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableNextRunAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledTaskCreate) SetCreatedAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableCreatedAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledTaskCreate) SetID(v string) *ScheduledTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_c *ScheduledTaskCreate) Mutation() *ScheduledTaskMutation {
	return _c.mutation
}

// Save creates the ScheduledTask in the database.
func (_c *ScheduledTaskCreate) Save(ctx context.Context) (*ScheduledTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledTaskCreate) SaveX(ctx context.Context) *ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledTaskCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := scheduledtask.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledTaskCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScheduledTask.name"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "ScheduledTask.prompt"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ScheduledTask.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := scheduledtask.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ScheduledTask.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledTask.created_at"`)}
	}
	return nil
}

func (_c *ScheduledTaskCreate) sqlSave(ctx context.Context) (*ScheduledTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledTaskCreate) createSpec() (*ScheduledTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledtask.Table, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Cron(); ok {
		_spec.SetField(scheduledtask.FieldCron, field.TypeString, value)
		_node.Cron = value
	}
	if value, ok := _c.mutation.StartAt(); ok {
		_spec.SetField(scheduledtask.FieldStartAt, field.TypeTime, value)
		_node.StartAt = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(scheduledtask.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.LastResult(); ok {
		_spec.SetField(scheduledtask.FieldLastResult, field.TypeString, value)
		_node.LastResult = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ScheduledTaskCreateBulk is the builder for creating many ScheduledTask entities in bulk.
type ScheduledTaskCreateBulk struct {
	config
	err      error
	builders []*ScheduledTaskCreate
}

// Save creates the ScheduledTask entities in the database.
func (_c *ScheduledTaskCreateBulk) Save(ctx context.Context) ([]*ScheduledTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduledTaskCreateBulk) SaveX(ctx context.Context) []*ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
