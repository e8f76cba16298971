// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/models"
)

// PendingActionCreate is the builder for creating a PendingAction entity.
type PendingActionCreate struct {
	config
	mutation *PendingActionMutation
	hooks    []Hook
}

// SetToolName sets the "tool_name" field.
func (_c *PendingActionCreate) SetToolName(v string) *PendingActionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolArgs sets the "tool_args" field.
func (_c *PendingActionCreate) SetToolArgs(v map[string]interface{}) *PendingActionCreate {
	_c.mutation.SetToolArgs(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingActionCreate) SetStatus(v pendingaction.Status) *PendingActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableStatus(v *pendingaction.Status) *PendingActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *PendingActionCreate) SetRequestedAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableRequestedAt(v *time.Time) *PendingActionCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PendingActionCreate) SetExpiresAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *PendingActionCreate) SetDecidedBy(v string) *PendingActionCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableDecidedBy(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *PendingActionCreate) SetDecidedAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableDecidedAt(v *time.Time) *PendingActionCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetExecutionResult sets the "execution_result" field.
func (_c *PendingActionCreate) SetExecutionResult(v *models.ExecutionResult) *PendingActionCreate {
	_c.mutation.SetExecutionResult(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *PendingActionCreate) SetRuleID(v string) *PendingActionCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableRuleID(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetAgentSummary sets the "agent_summary" field.
func (_c *PendingActionCreate) SetAgentSummary(v string) *PendingActionCreate {
	_c.mutation.SetAgentSummary(v)
	return _c
}

// SetNillableAgentSummary sets the "agent_summary" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableAgentSummary(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetAgentSummary(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PendingActionCreate) SetSessionID(v string) *PendingActionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableSessionID(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *PendingActionCreate) SetRiskTier(v pendingaction.RiskTier) *PendingActionCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableRiskTier(v *pendingaction.RiskTier) *PendingActionCreate {
	if v != nil {
		_c.SetRiskTier(*v)
	}
	return _c
}

// SetNeedsReconciliation sets the "needs_reconciliation" field.
func (_c *PendingActionCreate) SetNeedsReconciliation(v bool) *PendingActionCreate {
	_c.mutation.SetNeedsReconciliation(v)
	return _c
}

// SetNillableNeedsReconciliation sets the "needs_reconciliation" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableNeedsReconciliation(v *bool) *PendingActionCreate {
	if v != nil {
		_c.SetNeedsReconciliation(*v)
	}
	return _c
}

// SetDispatchEpoch sets the "dispatch_epoch" field.
func (_c *PendingActionCreate) SetDispatchEpoch(v string) *PendingActionCreate {
	_c.mutation.SetDispatchEpoch(v)
	return _c
}

// SetNillableDispatchEpoch sets the "dispatch_epoch" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableDispatchEpoch(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetDispatchEpoch(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingActionCreate) SetID(v string) *PendingActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingActionMutation object of the builder.
func (_c *PendingActionCreate) Mutation() *PendingActionMutation {
	return _c.mutation
}

// Save creates the PendingAction in the database.
func (_c *PendingActionCreate) Save(ctx context.Context) (*PendingAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingActionCreate) SaveX(ctx context.Context) *PendingAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingActionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := pendingaction.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		v := pendingaction.DefaultRiskTier
		_c.mutation.SetRiskTier(v)
	}
	if _, ok := _c.mutation.NeedsReconciliation(); !ok {
		v := pendingaction.DefaultNeedsReconciliation
		_c.mutation.SetNeedsReconciliation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingActionCreate) check() error {
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "PendingAction.tool_name"`)}
	}
	if _, ok := _c.mutation.ToolArgs(); !ok {
		return &ValidationError{Name: "tool_args", err: errors.New(`ent: missing required field "PendingAction.tool_args"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "PendingAction.requested_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "PendingAction.expires_at"`)}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "PendingAction.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := pendingaction.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "PendingAction.risk_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReconciliation(); !ok {
		return &ValidationError{Name: "needs_reconciliation", err: errors.New(`ent: missing required field "PendingAction.needs_reconciliation"`)}
	}
	return nil
}

func (_c *PendingActionCreate) sqlSave(ctx context.Context) (*PendingAction, error) {
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
			return nil, fmt.Errorf("unexpected PendingAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingActionCreate) createSpec() (*PendingAction, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingaction.Table, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(pendingaction.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolArgs(); ok {
		_spec.SetField(pendingaction.FieldToolArgs, field.TypeJSON, value)
		_node.ToolArgs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(pendingaction.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(pendingaction.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(pendingaction.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.ExecutionResult(); ok {
		_spec.SetField(pendingaction.FieldExecutionResult, field.TypeJSON, value)
		_node.ExecutionResult = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(pendingaction.FieldRuleID, field.TypeString, value)
		_node.RuleID = &value
	}
	if value, ok := _c.mutation.AgentSummary(); ok {
		_spec.SetField(pendingaction.FieldAgentSummary, field.TypeString, value)
		_node.AgentSummary = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pendingaction.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(pendingaction.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.NeedsReconciliation(); ok {
		_spec.SetField(pendingaction.FieldNeedsReconciliation, field.TypeBool, value)
		_node.NeedsReconciliation = value
	}
	if value, ok := _c.mutation.DispatchEpoch(); ok {
		_spec.SetField(pendingaction.FieldDispatchEpoch, field.TypeString, value)
		_node.DispatchEpoch = &value
	}
	return _node, _spec
}

// PendingActionCreateBulk is the builder for creating many PendingAction entities in bulk.
type PendingActionCreateBulk struct {
	config
	err      error
	builders []*PendingActionCreate
}

// Save creates the PendingAction entities in the database.
func (_c *PendingActionCreateBulk) Save(ctx context.Context) ([]*PendingAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingActionMutation)
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
func (_c *PendingActionCreateBulk) SaveX(ctx context.Context) []*PendingAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
