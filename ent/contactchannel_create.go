// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/contact"
	"github.com/butlerhq/butlerd/ent/contactchannel"
)

// ContactChannelCreate is the builder for creating a ContactChannel entity.
type ContactChannelCreate struct {
	config
	mutation *ContactChannelMutation
	hooks    []Hook
}

// SetContactID sets the "contact_id" field.
func (_c *ContactChannelCreate) SetContactID(v string) *ContactChannelCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetChannelType sets the "channel_type" field.
func (_c *ContactChannelCreate) SetChannelType(v string) *ContactChannelCreate {
	_c.mutation.SetChannelType(v)
	return _c
}

// SetChannelValue sets the "channel_value" field.
func (_c *ContactChannelCreate) SetChannelValue(v string) *ContactChannelCreate {
	_c.mutation.SetChannelValue(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *ContactChannelCreate) SetIsPrimary(v bool) *ContactChannelCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *ContactChannelCreate) SetNillableIsPrimary(v *bool) *ContactChannelCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetSecured sets the "secured" field.
func (_c *ContactChannelCreate) SetSecured(v bool) *ContactChannelCreate {
	_c.mutation.SetSecured(v)
	return _c
}

// SetNillableSecured sets the "secured" field if the given value is not nil.
func (_c *ContactChannelCreate) SetNillableSecured(v *bool) *ContactChannelCreate {
	if v != nil {
		_c.SetSecured(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactChannelCreate) SetCreatedAt(v time.Time) *ContactChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactChannelCreate) SetNillableCreatedAt(v *time.Time) *ContactChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactChannelCreate) SetID(v string) *ContactChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *ContactChannelCreate) SetContact(v *Contact) *ContactChannelCreate {
	return _c.SetContactID(v.ID)
}

// Mutation returns the ContactChannelMutation object of the builder.
func (_c *ContactChannelCreate) Mutation() *ContactChannelMutation {
	return _c.mutation
}

// Save creates the ContactChannel in the database.
func (_c *ContactChannelCreate) Save(ctx context.Context) (*ContactChannel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactChannelCreate) SaveX(ctx context.Context) *ContactChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactChannelCreate) defaults() {
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := contactchannel.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.Secured(); !ok {
		v := contactchannel.DefaultSecured
		_c.mutation.SetSecured(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contactchannel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactChannelCreate) check() error {
	if _, ok := _c.mutation.ContactID(); !ok {
		return &ValidationError{Name: "contact_id", err: errors.New(`ent: missing required field "ContactChannel.contact_id"`)}
	}
	if _, ok := _c.mutation.ChannelType(); !ok {
		return &ValidationError{Name: "channel_type", err: errors.New(`ent: missing required field "ContactChannel.channel_type"`)}
	}
	if _, ok := _c.mutation.ChannelValue(); !ok {
		return &ValidationError{Name: "channel_value", err: errors.New(`ent: missing required field "ContactChannel.channel_value"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "ContactChannel.is_primary"`)}
	}
	if _, ok := _c.mutation.Secured(); !ok {
		return &ValidationError{Name: "secured", err: errors.New(`ent: missing required field "ContactChannel.secured"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContactChannel.created_at"`)}
	}
	if len(_c.mutation.ContactIDs()) == 0 {
		return &ValidationError{Name: "contact", err: errors.New(`ent: missing required edge "ContactChannel.contact"`)}
	}
	return nil
}

func (_c *ContactChannelCreate) sqlSave(ctx context.Context) (*ContactChannel, error) {
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
			return nil, fmt.Errorf("unexpected ContactChannel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContactChannelCreate) createSpec() (*ContactChannel, *sqlgraph.CreateSpec) {
	var (
		_node = &ContactChannel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contactchannel.Table, sqlgraph.NewFieldSpec(contactchannel.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChannelType(); ok {
		_spec.SetField(contactchannel.FieldChannelType, field.TypeString, value)
		_node.ChannelType = value
	}
	if value, ok := _c.mutation.ChannelValue(); ok {
		_spec.SetField(contactchannel.FieldChannelValue, field.TypeString, value)
		_node.ChannelValue = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(contactchannel.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.Secured(); ok {
		_spec.SetField(contactchannel.FieldSecured, field.TypeBool, value)
		_node.Secured = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contactchannel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contactchannel.ContactTable,
			Columns: []string{contactchannel.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContactChannelCreateBulk is the builder for creating many ContactChannel entities in bulk.
type ContactChannelCreateBulk struct {
	config
	err      error
	builders []*ContactChannelCreate
}

// Save creates the ContactChannel entities in the database.
func (_c *ContactChannelCreateBulk) Save(ctx context.Context) ([]*ContactChannel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContactChannel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactChannelMutation)
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
func (_c *ContactChannelCreateBulk) SaveX(ctx context.Context) []*ContactChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
