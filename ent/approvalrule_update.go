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
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/predicate"
	"github.com/butlerhq/butlerd/pkg/models"
)

// ApprovalRuleUpdate is the builder for updating ApprovalRule entities.
type ApprovalRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRuleMutation
}

// Where appends a list predicates to the ApprovalRuleUpdate builder.
func (_u *ApprovalRuleUpdate) Where(ps ...predicate.ApprovalRule) *ApprovalRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArgConstraints sets the "arg_constraints" field.
func (_u *ApprovalRuleUpdate) SetArgConstraints(v map[string]models.ArgConstraint) *ApprovalRuleUpdate {
	_u.mutation.SetArgConstraints(v)
	return _u
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (_u *ApprovalRuleUpdate) ClearArgConstraints() *ApprovalRuleUpdate {
	_u.mutation.ClearArgConstraints()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRuleUpdate) SetDescription(v string) *ApprovalRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableDescription(v *string) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRuleUpdate) ClearDescription() *ApprovalRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetActive sets the "active" field.
func (_u *ApprovalRuleUpdate) SetActive(v bool) *ApprovalRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableActive(v *bool) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalRuleUpdate) SetExpiresAt(v time.Time) *ApprovalRuleUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ApprovalRuleUpdate) ClearExpiresAt() *ApprovalRuleUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *ApprovalRuleUpdate) SetMaxUses(v int) *ApprovalRuleUpdate {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableMaxUses(v *int) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *ApprovalRuleUpdate) AddMaxUses(v int) *ApprovalRuleUpdate {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *ApprovalRuleUpdate) ClearMaxUses() *ApprovalRuleUpdate {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *ApprovalRuleUpdate) SetUseCount(v int) *ApprovalRuleUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableUseCount(v *int) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *ApprovalRuleUpdate) AddUseCount(v int) *ApprovalRuleUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *ApprovalRuleUpdate) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleUpdate {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableRiskTier(v *approvalrule.RiskTier) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetCreatedFromActionID sets the "created_from_action_id" field.
func (_u *ApprovalRuleUpdate) SetCreatedFromActionID(v string) *ApprovalRuleUpdate {
	_u.mutation.SetCreatedFromActionID(v)
	return _u
}

// SetNillableCreatedFromActionID sets the "created_from_action_id" field if the given value is not nil.
func (_u *ApprovalRuleUpdate) SetNillableCreatedFromActionID(v *string) *ApprovalRuleUpdate {
	if v != nil {
		_u.SetCreatedFromActionID(*v)
	}
	return _u
}

// ClearCreatedFromActionID clears the value of the "created_from_action_id" field.
func (_u *ApprovalRuleUpdate) ClearCreatedFromActionID() *ApprovalRuleUpdate {
	_u.mutation.ClearCreatedFromActionID()
	return _u
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_u *ApprovalRuleUpdate) Mutation() *ApprovalRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRuleUpdate) check() error {
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := approvalrule.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrule.Table, approvalrule.Columns, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArgConstraints(); ok {
		_spec.SetField(approvalrule.FieldArgConstraints, field.TypeJSON, value)
	}
	if _u.mutation.ArgConstraintsCleared() {
		_spec.ClearField(approvalrule.FieldArgConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(approvalrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrule.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(approvalrule.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(approvalrule.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(approvalrule.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(approvalrule.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(approvalrule.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(approvalrule.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(approvalrule.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedFromActionID(); ok {
		_spec.SetField(approvalrule.FieldCreatedFromActionID, field.TypeString, value)
	}
	if _u.mutation.CreatedFromActionIDCleared() {
		_spec.ClearField(approvalrule.FieldCreatedFromActionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRuleUpdateOne is the builder for updating a single ApprovalRule entity.
type ApprovalRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRuleMutation
}

// SetArgConstraints sets the "arg_constraints" field.
func (_u *ApprovalRuleUpdateOne) SetArgConstraints(v map[string]models.ArgConstraint) *ApprovalRuleUpdateOne {
	_u.mutation.SetArgConstraints(v)
	return _u
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (_u *ApprovalRuleUpdateOne) ClearArgConstraints() *ApprovalRuleUpdateOne {
	_u.mutation.ClearArgConstraints()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRuleUpdateOne) SetDescription(v string) *ApprovalRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableDescription(v *string) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRuleUpdateOne) ClearDescription() *ApprovalRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetActive sets the "active" field.
func (_u *ApprovalRuleUpdateOne) SetActive(v bool) *ApprovalRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableActive(v *bool) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalRuleUpdateOne) SetExpiresAt(v time.Time) *ApprovalRuleUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ApprovalRuleUpdateOne) ClearExpiresAt() *ApprovalRuleUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *ApprovalRuleUpdateOne) SetMaxUses(v int) *ApprovalRuleUpdateOne {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableMaxUses(v *int) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *ApprovalRuleUpdateOne) AddMaxUses(v int) *ApprovalRuleUpdateOne {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *ApprovalRuleUpdateOne) ClearMaxUses() *ApprovalRuleUpdateOne {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *ApprovalRuleUpdateOne) SetUseCount(v int) *ApprovalRuleUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableUseCount(v *int) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *ApprovalRuleUpdateOne) AddUseCount(v int) *ApprovalRuleUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *ApprovalRuleUpdateOne) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleUpdateOne {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableRiskTier(v *approvalrule.RiskTier) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetCreatedFromActionID sets the "created_from_action_id" field.
func (_u *ApprovalRuleUpdateOne) SetCreatedFromActionID(v string) *ApprovalRuleUpdateOne {
	_u.mutation.SetCreatedFromActionID(v)
	return _u
}

// SetNillableCreatedFromActionID sets the "created_from_action_id" field if the given value is not nil.
func (_u *ApprovalRuleUpdateOne) SetNillableCreatedFromActionID(v *string) *ApprovalRuleUpdateOne {
	if v != nil {
		_u.SetCreatedFromActionID(*v)
	}
	return _u
}

// ClearCreatedFromActionID clears the value of the "created_from_action_id" field.
func (_u *ApprovalRuleUpdateOne) ClearCreatedFromActionID() *ApprovalRuleUpdateOne {
	_u.mutation.ClearCreatedFromActionID()
	return _u
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_u *ApprovalRuleUpdateOne) Mutation() *ApprovalRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRuleUpdate builder.
func (_u *ApprovalRuleUpdateOne) Where(ps ...predicate.ApprovalRule) *ApprovalRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRuleUpdateOne) Select(field string, fields ...string) *ApprovalRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRule entity.
func (_u *ApprovalRuleUpdateOne) Save(ctx context.Context) (*ApprovalRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRuleUpdateOne) SaveX(ctx context.Context) *ApprovalRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := approvalrule.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRuleUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrule.Table, approvalrule.Columns, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrule.FieldID)
		for _, f := range fields {
			if !approvalrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrule.FieldID {
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
	if value, ok := _u.mutation.ArgConstraints(); ok {
		_spec.SetField(approvalrule.FieldArgConstraints, field.TypeJSON, value)
	}
	if _u.mutation.ArgConstraintsCleared() {
		_spec.ClearField(approvalrule.FieldArgConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(approvalrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrule.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(approvalrule.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(approvalrule.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(approvalrule.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(approvalrule.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(approvalrule.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(approvalrule.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(approvalrule.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedFromActionID(); ok {
		_spec.SetField(approvalrule.FieldCreatedFromActionID, field.TypeString, value)
	}
	if _u.mutation.CreatedFromActionIDCleared() {
		_spec.ClearField(approvalrule.FieldCreatedFromActionID, field.TypeString)
	}
	_node = &ApprovalRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
