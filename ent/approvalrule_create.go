// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/pkg/models"
)

// ApprovalRuleCreate is the builder for creating a ApprovalRule entity.
type ApprovalRuleCreate struct {
	config
	mutation *ApprovalRuleMutation
	hooks    []Hook
}

// SetToolName sets the "tool_name" field.
func (_c *ApprovalRuleCreate) SetToolName(v string) *ApprovalRuleCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArgConstraints sets the "arg_constraints" field.
func (_c *ApprovalRuleCreate) SetArgConstraints(v map[string]models.ArgConstraint) *ApprovalRuleCreate {
	_c.mutation.SetArgConstraints(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApprovalRuleCreate) SetDescription(v string) *ApprovalRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableDescription(v *string) *ApprovalRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRuleCreate) SetCreatedAt(v time.Time) *ApprovalRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ApprovalRuleCreate) SetActive(v bool) *ApprovalRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableActive(v *bool) *ApprovalRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalRuleCreate) SetExpiresAt(v time.Time) *ApprovalRuleCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableExpiresAt(v *time.Time) *ApprovalRuleCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *ApprovalRuleCreate) SetMaxUses(v int) *ApprovalRuleCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableMaxUses(v *int) *ApprovalRuleCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *ApprovalRuleCreate) SetUseCount(v int) *ApprovalRuleCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableUseCount(v *int) *ApprovalRuleCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *ApprovalRuleCreate) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableRiskTier(v *approvalrule.RiskTier) *ApprovalRuleCreate {
	if v != nil {
		_c.SetRiskTier(*v)
	}
	return _c
}

// SetCreatedFromActionID sets the "created_from_action_id" field.
func (_c *ApprovalRuleCreate) SetCreatedFromActionID(v string) *ApprovalRuleCreate {
	_c.mutation.SetCreatedFromActionID(v)
	return _c
}

// SetNillableCreatedFromActionID sets the "created_from_action_id" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableCreatedFromActionID(v *string) *ApprovalRuleCreate {
	if v != nil {
		_c.SetCreatedFromActionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRuleCreate) SetID(v string) *ApprovalRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_c *ApprovalRuleCreate) Mutation() *ApprovalRuleMutation {
	return _c.mutation
}

// Save creates the ApprovalRule in the database.
func (_c *ApprovalRuleCreate) Save(ctx context.Context) (*ApprovalRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRuleCreate) SaveX(ctx context.Context) *ApprovalRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := approvalrule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		v := approvalrule.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		v := approvalrule.DefaultRiskTier
		_c.mutation.SetRiskTier(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRuleCreate) check() error {
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ApprovalRule.tool_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRule.created_at"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ApprovalRule.active"`)}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`ent: missing required field "ApprovalRule.use_count"`)}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "ApprovalRule.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := approvalrule.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_c *ApprovalRuleCreate) sqlSave(ctx context.Context) (*ApprovalRule, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRuleCreate) createSpec() (*ApprovalRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrule.Table, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(approvalrule.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ArgConstraints(); ok {
		_spec.SetField(approvalrule.FieldArgConstraints, field.TypeJSON, value)
		_node.ArgConstraints = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(approvalrule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(approvalrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrule.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(approvalrule.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = &value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(approvalrule.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(approvalrule.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.CreatedFromActionID(); ok {
		_spec.SetField(approvalrule.FieldCreatedFromActionID, field.TypeString, value)
		_node.CreatedFromActionID = &value
	}
	return _node, _spec
}

// ApprovalRuleCreateBulk is the builder for creating many ApprovalRule entities in bulk.
type ApprovalRuleCreateBulk struct {
	config
	err      error
	builders []*ApprovalRuleCreate
}

// Save creates the ApprovalRule entities in the database.
func (_c *ApprovalRuleCreateBulk) Save(ctx context.Context) ([]*ApprovalRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRuleMutation)
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
func (_c *ApprovalRuleCreateBulk) SaveX(ctx context.Context) []*ApprovalRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
