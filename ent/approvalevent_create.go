// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/approvalevent"
)

// ApprovalEventCreate is the builder for creating a ApprovalEvent entity.
type ApprovalEventCreate struct {
	config
	mutation *ApprovalEventMutation
	hooks    []Hook
}

// SetEventType sets the "event_type" field.
func (_c *ApprovalEventCreate) SetEventType(v approvalevent.EventType) *ApprovalEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActionID sets the "action_id" field.
func (_c *ApprovalEventCreate) SetActionID(v string) *ApprovalEventCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetNillableActionID sets the "action_id" field if the given value is not nil.
func (_c *ApprovalEventCreate) SetNillableActionID(v *string) *ApprovalEventCreate {
	if v != nil {
		_c.SetActionID(*v)
	}
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *ApprovalEventCreate) SetRuleID(v string) *ApprovalEventCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *ApprovalEventCreate) SetNillableRuleID(v *string) *ApprovalEventCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *ApprovalEventCreate) SetActor(v string) *ApprovalEventCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ApprovalEventCreate) SetOccurredAt(v time.Time) *ApprovalEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *ApprovalEventCreate) SetNillableOccurredAt(v *time.Time) *ApprovalEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ApprovalEventCreate) SetReason(v string) *ApprovalEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ApprovalEventCreate) SetNillableReason(v *string) *ApprovalEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetPayloadMetadata sets the "payload_metadata" field.
func (_c *ApprovalEventCreate) SetPayloadMetadata(v map[string]interface{}) *ApprovalEventCreate {
	_c.mutation.SetPayloadMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalEventCreate) SetID(v string) *ApprovalEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalEventMutation object of the builder.
func (_c *ApprovalEventCreate) Mutation() *ApprovalEventMutation {
	return _c.mutation
}

// Save creates the ApprovalEvent in the database.
func (_c *ApprovalEventCreate) Save(ctx context.Context) (*ApprovalEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalEventCreate) SaveX(ctx context.Context) *ApprovalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalEventCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := approvalevent.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalEventCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ApprovalEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := approvalevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ApprovalEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "ApprovalEvent.actor"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ApprovalEvent.occurred_at"`)}
	}
	return nil
}

func (_c *ApprovalEventCreate) sqlSave(ctx context.Context) (*ApprovalEvent, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalEventCreate) createSpec() (*ApprovalEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalevent.Table, sqlgraph.NewFieldSpec(approvalevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(approvalevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActionID(); ok {
		_spec.SetField(approvalevent.FieldActionID, field.TypeString, value)
		_node.ActionID = &value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(approvalevent.FieldRuleID, field.TypeString, value)
		_node.RuleID = &value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(approvalevent.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(approvalevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(approvalevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.PayloadMetadata(); ok {
		_spec.SetField(approvalevent.FieldPayloadMetadata, field.TypeJSON, value)
		_node.PayloadMetadata = value
	}
	return _node, _spec
}

// ApprovalEventCreateBulk is the builder for creating many ApprovalEvent entities in bulk.
type ApprovalEventCreateBulk struct {
	config
	err      error
	builders []*ApprovalEventCreate
}

// Save creates the ApprovalEvent entities in the database.
func (_c *ApprovalEventCreateBulk) Save(ctx context.Context) ([]*ApprovalEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalEventMutation)
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
func (_c *ApprovalEventCreateBulk) SaveX(ctx context.Context) []*ApprovalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
