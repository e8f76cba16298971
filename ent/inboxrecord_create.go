// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/inboxrecord"
)

// InboxRecordCreate is the builder for creating a InboxRecord entity.
type InboxRecordCreate struct {
	config
	mutation *InboxRecordMutation
	hooks    []Hook
}

// SetSourceChannel sets the "source_channel" field.
func (_c *InboxRecordCreate) SetSourceChannel(v string) *InboxRecordCreate {
	_c.mutation.SetSourceChannel(v)
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *InboxRecordCreate) SetSourceMessageID(v string) *InboxRecordCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InboxRecordCreate) SetPayload(v map[string]interface{}) *InboxRecordCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *InboxRecordCreate) SetIngestedAt(v time.Time) *InboxRecordCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_c *InboxRecordCreate) SetNillableIngestedAt(v *time.Time) *InboxRecordCreate {
	if v != nil {
		_c.SetIngestedAt(*v)
	}
	return _c
}

// SetPipelineRequestID sets the "pipeline_request_id" field.
func (_c *InboxRecordCreate) SetPipelineRequestID(v string) *InboxRecordCreate {
	_c.mutation.SetPipelineRequestID(v)
	return _c
}

// SetNillablePipelineRequestID sets the "pipeline_request_id" field if the given value is not nil.
func (_c *InboxRecordCreate) SetNillablePipelineRequestID(v *string) *InboxRecordCreate {
	if v != nil {
		_c.SetPipelineRequestID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InboxRecordCreate) SetID(v string) *InboxRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InboxRecordMutation object of the builder.
func (_c *InboxRecordCreate) Mutation() *InboxRecordMutation {
	return _c.mutation
}

// Save creates the InboxRecord in the database.
func (_c *InboxRecordCreate) Save(ctx context.Context) (*InboxRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboxRecordCreate) SaveX(ctx context.Context) *InboxRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboxRecordCreate) defaults() {
	if _, ok := _c.mutation.IngestedAt(); !ok {
		v := inboxrecord.DefaultIngestedAt()
		_c.mutation.SetIngestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboxRecordCreate) check() error {
	if _, ok := _c.mutation.SourceChannel(); !ok {
		return &ValidationError{Name: "source_channel", err: errors.New(`ent: missing required field "InboxRecord.source_channel"`)}
	}
	if _, ok := _c.mutation.SourceMessageID(); !ok {
		return &ValidationError{Name: "source_message_id", err: errors.New(`ent: missing required field "InboxRecord.source_message_id"`)}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "InboxRecord.ingested_at"`)}
	}
	return nil
}

func (_c *InboxRecordCreate) sqlSave(ctx context.Context) (*InboxRecord, error) {
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
			return nil, fmt.Errorf("unexpected InboxRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InboxRecordCreate) createSpec() (*InboxRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &InboxRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboxrecord.Table, sqlgraph.NewFieldSpec(inboxrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceChannel(); ok {
		_spec.SetField(inboxrecord.FieldSourceChannel, field.TypeString, value)
		_node.SourceChannel = value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(inboxrecord.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(inboxrecord.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(inboxrecord.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if value, ok := _c.mutation.PipelineRequestID(); ok {
		_spec.SetField(inboxrecord.FieldPipelineRequestID, field.TypeString, value)
		_node.PipelineRequestID = &value
	}
	return _node, _spec
}

// InboxRecordCreateBulk is the builder for creating many InboxRecord entities in bulk.
type InboxRecordCreateBulk struct {
	config
	err      error
	builders []*InboxRecordCreate
}

// Save creates the InboxRecord entities in the database.
func (_c *InboxRecordCreateBulk) Save(ctx context.Context) ([]*InboxRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboxRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboxRecordMutation)
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
func (_c *InboxRecordCreateBulk) SaveX(ctx context.Context) []*InboxRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
