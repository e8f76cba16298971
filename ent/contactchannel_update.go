// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/contactchannel"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ContactChannelUpdate is the builder for updating ContactChannel entities.
type ContactChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ContactChannelMutation
}

// Where appends a list predicates to the ContactChannelUpdate builder.
func (_u *ContactChannelUpdate) Where(ps ...predicate.ContactChannel) *ContactChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelType sets the "channel_type" field.
func (_u *ContactChannelUpdate) SetChannelType(v string) *ContactChannelUpdate {
	_u.mutation.SetChannelType(v)
	return _u
}

// SetNillableChannelType sets the "channel_type" field if the given value is not nil.
func (_u *ContactChannelUpdate) SetNillableChannelType(v *string) *ContactChannelUpdate {
	if v != nil {
		_u.SetChannelType(*v)
	}
	return _u
}

// SetChannelValue sets the "channel_value" field.
func (_u *ContactChannelUpdate) SetChannelValue(v string) *ContactChannelUpdate {
	_u.mutation.SetChannelValue(v)
	return _u
}

// SetNillableChannelValue sets the "channel_value" field if the given value is not nil.
func (_u *ContactChannelUpdate) SetNillableChannelValue(v *string) *ContactChannelUpdate {
	if v != nil {
		_u.SetChannelValue(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *ContactChannelUpdate) SetIsPrimary(v bool) *ContactChannelUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *ContactChannelUpdate) SetNillableIsPrimary(v *bool) *ContactChannelUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetSecured sets the "secured" field.
func (_u *ContactChannelUpdate) SetSecured(v bool) *ContactChannelUpdate {
	_u.mutation.SetSecured(v)
	return _u
}

// SetNillableSecured sets the "secured" field if the given value is not nil.
func (_u *ContactChannelUpdate) SetNillableSecured(v *bool) *ContactChannelUpdate {
	if v != nil {
		_u.SetSecured(*v)
	}
	return _u
}

// Mutation returns the ContactChannelMutation object of the builder.
func (_u *ContactChannelUpdate) Mutation() *ContactChannelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactChannelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactChannelUpdate) check() error {
	if _u.mutation.ContactCleared() && len(_u.mutation.ContactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContactChannel.contact"`)
	}
	return nil
}

func (_u *ContactChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactchannel.Table, contactchannel.Columns, sqlgraph.NewFieldSpec(contactchannel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelType(); ok {
		_spec.SetField(contactchannel.FieldChannelType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelValue(); ok {
		_spec.SetField(contactchannel.FieldChannelValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(contactchannel.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Secured(); ok {
		_spec.SetField(contactchannel.FieldSecured, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactChannelUpdateOne is the builder for updating a single ContactChannel entity.
type ContactChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactChannelMutation
}

// SetChannelType sets the "channel_type" field.
func (_u *ContactChannelUpdateOne) SetChannelType(v string) *ContactChannelUpdateOne {
	_u.mutation.SetChannelType(v)
	return _u
}

// SetNillableChannelType sets the "channel_type" field if the given value is not nil.
func (_u *ContactChannelUpdateOne) SetNillableChannelType(v *string) *ContactChannelUpdateOne {
	if v != nil {
		_u.SetChannelType(*v)
	}
	return _u
}

// SetChannelValue sets the "channel_value" field.
func (_u *ContactChannelUpdateOne) SetChannelValue(v string) *ContactChannelUpdateOne {
	_u.mutation.SetChannelValue(v)
	return _u
}

// SetNillableChannelValue sets the "channel_value" field if the given value is not nil.
func (_u *ContactChannelUpdateOne) SetNillableChannelValue(v *string) *ContactChannelUpdateOne {
	if v != nil {
		_u.SetChannelValue(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *ContactChannelUpdateOne) SetIsPrimary(v bool) *ContactChannelUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *ContactChannelUpdateOne) SetNillableIsPrimary(v *bool) *ContactChannelUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetSecured sets the "secured" field.
func (_u *ContactChannelUpdateOne) SetSecured(v bool) *ContactChannelUpdateOne {
	_u.mutation.SetSecured(v)
	return _u
}

// SetNillableSecured sets the "secured" field if the given value is not nil.
func (_u *ContactChannelUpdateOne) SetNillableSecured(v *bool) *ContactChannelUpdateOne {
	if v != nil {
		_u.SetSecured(*v)
	}
	return _u
}

// Mutation returns the ContactChannelMutation object of the builder.
func (_u *ContactChannelUpdateOne) Mutation() *ContactChannelMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContactChannelUpdate builder.
func (_u *ContactChannelUpdateOne) Where(ps ...predicate.ContactChannel) *ContactChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactChannelUpdateOne) Select(field string, fields ...string) *ContactChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContactChannel entity.
func (_u *ContactChannelUpdateOne) Save(ctx context.Context) (*ContactChannel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactChannelUpdateOne) SaveX(ctx context.Context) *ContactChannel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactChannelUpdateOne) check() error {
	if _u.mutation.ContactCleared() && len(_u.mutation.ContactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContactChannel.contact"`)
	}
	return nil
}

func (_u *ContactChannelUpdateOne) sqlSave(ctx context.Context) (_node *ContactChannel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactchannel.Table, contactchannel.Columns, sqlgraph.NewFieldSpec(contactchannel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContactChannel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactchannel.FieldID)
		for _, f := range fields {
			if !contactchannel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contactchannel.FieldID {
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
	if value, ok := _u.mutation.ChannelType(); ok {
		_spec.SetField(contactchannel.FieldChannelType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelValue(); ok {
		_spec.SetField(contactchannel.FieldChannelValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(contactchannel.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Secured(); ok {
		_spec.SetField(contactchannel.FieldSecured, field.TypeBool, value)
	}
	_node = &ContactChannel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
