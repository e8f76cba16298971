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
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/ent/predicate"
	"github.com/butlerhq/butlerd/pkg/models"
)

// PendingActionUpdate is the builder for updating PendingAction entities.
type PendingActionUpdate struct {
	config
	hooks    []Hook
	mutation *PendingActionMutation
}

// Where appends a list predicates to the PendingActionUpdate builder.
func (_u *PendingActionUpdate) Where(ps ...predicate.PendingAction) *PendingActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *PendingActionUpdate) SetToolArgs(v map[string]interface{}) *PendingActionUpdate {
	_u.mutation.SetToolArgs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingActionUpdate) SetStatus(v pendingaction.Status) *PendingActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableStatus(v *pendingaction.Status) *PendingActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PendingActionUpdate) SetExpiresAt(v time.Time) *PendingActionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableExpiresAt(v *time.Time) *PendingActionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *PendingActionUpdate) SetDecidedBy(v string) *PendingActionUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableDecidedBy(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *PendingActionUpdate) ClearDecidedBy() *PendingActionUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *PendingActionUpdate) SetDecidedAt(v time.Time) *PendingActionUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableDecidedAt(v *time.Time) *PendingActionUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *PendingActionUpdate) ClearDecidedAt() *PendingActionUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetExecutionResult sets the "execution_result" field.
func (_u *PendingActionUpdate) SetExecutionResult(v *models.ExecutionResult) *PendingActionUpdate {
	_u.mutation.SetExecutionResult(v)
	return _u
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (_u *PendingActionUpdate) ClearExecutionResult() *PendingActionUpdate {
	_u.mutation.ClearExecutionResult()
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *PendingActionUpdate) SetRuleID(v string) *PendingActionUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableRuleID(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *PendingActionUpdate) ClearRuleID() *PendingActionUpdate {
	_u.mutation.ClearRuleID()
	return _u
}

// SetAgentSummary sets the "agent_summary" field.
func (_u *PendingActionUpdate) SetAgentSummary(v string) *PendingActionUpdate {
	_u.mutation.SetAgentSummary(v)
	return _u
}

// SetNillableAgentSummary sets the "agent_summary" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableAgentSummary(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetAgentSummary(*v)
	}
	return _u
}

// ClearAgentSummary clears the value of the "agent_summary" field.
func (_u *PendingActionUpdate) ClearAgentSummary() *PendingActionUpdate {
	_u.mutation.ClearAgentSummary()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PendingActionUpdate) SetSessionID(v string) *PendingActionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableSessionID(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PendingActionUpdate) ClearSessionID() *PendingActionUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *PendingActionUpdate) SetRiskTier(v pendingaction.RiskTier) *PendingActionUpdate {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableRiskTier(v *pendingaction.RiskTier) *PendingActionUpdate {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetNeedsReconciliation sets the "needs_reconciliation" field.
func (_u *PendingActionUpdate) SetNeedsReconciliation(v bool) *PendingActionUpdate {
	_u.mutation.SetNeedsReconciliation(v)
	return _u
}

// SetNillableNeedsReconciliation sets the "needs_reconciliation" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableNeedsReconciliation(v *bool) *PendingActionUpdate {
	if v != nil {
		_u.SetNeedsReconciliation(*v)
	}
	return _u
}

// SetDispatchEpoch sets the "dispatch_epoch" field.
func (_u *PendingActionUpdate) SetDispatchEpoch(v string) *PendingActionUpdate {
	_u.mutation.SetDispatchEpoch(v)
	return _u
}

// SetNillableDispatchEpoch sets the "dispatch_epoch" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableDispatchEpoch(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetDispatchEpoch(*v)
	}
	return _u
}

// ClearDispatchEpoch clears the value of the "dispatch_epoch" field.
func (_u *PendingActionUpdate) ClearDispatchEpoch() *PendingActionUpdate {
	_u.mutation.ClearDispatchEpoch()
	return _u
}

// Mutation returns the PendingActionMutation object of the builder.
func (_u *PendingActionUpdate) Mutation() *PendingActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingActionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := pendingaction.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "PendingAction.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingaction.Table, pendingaction.Columns, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(pendingaction.FieldToolArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(pendingaction.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(pendingaction.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(pendingaction.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(pendingaction.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionResult(); ok {
		_spec.SetField(pendingaction.FieldExecutionResult, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionResultCleared() {
		_spec.ClearField(pendingaction.FieldExecutionResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(pendingaction.FieldRuleID, field.TypeString, value)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(pendingaction.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentSummary(); ok {
		_spec.SetField(pendingaction.FieldAgentSummary, field.TypeString, value)
	}
	if _u.mutation.AgentSummaryCleared() {
		_spec.ClearField(pendingaction.FieldAgentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pendingaction.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pendingaction.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(pendingaction.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReconciliation(); ok {
		_spec.SetField(pendingaction.FieldNeedsReconciliation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DispatchEpoch(); ok {
		_spec.SetField(pendingaction.FieldDispatchEpoch, field.TypeString, value)
	}
	if _u.mutation.DispatchEpochCleared() {
		_spec.ClearField(pendingaction.FieldDispatchEpoch, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingActionUpdateOne is the builder for updating a single PendingAction entity.
type PendingActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingActionMutation
}

// SetToolArgs sets the "tool_args" field.
func (_u *PendingActionUpdateOne) SetToolArgs(v map[string]interface{}) *PendingActionUpdateOne {
	_u.mutation.SetToolArgs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingActionUpdateOne) SetStatus(v pendingaction.Status) *PendingActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableStatus(v *pendingaction.Status) *PendingActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PendingActionUpdateOne) SetExpiresAt(v time.Time) *PendingActionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableExpiresAt(v *time.Time) *PendingActionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *PendingActionUpdateOne) SetDecidedBy(v string) *PendingActionUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableDecidedBy(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *PendingActionUpdateOne) ClearDecidedBy() *PendingActionUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *PendingActionUpdateOne) SetDecidedAt(v time.Time) *PendingActionUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableDecidedAt(v *time.Time) *PendingActionUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *PendingActionUpdateOne) ClearDecidedAt() *PendingActionUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetExecutionResult sets the "execution_result" field.
func (_u *PendingActionUpdateOne) SetExecutionResult(v *models.ExecutionResult) *PendingActionUpdateOne {
	_u.mutation.SetExecutionResult(v)
	return _u
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (_u *PendingActionUpdateOne) ClearExecutionResult() *PendingActionUpdateOne {
	_u.mutation.ClearExecutionResult()
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *PendingActionUpdateOne) SetRuleID(v string) *PendingActionUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableRuleID(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *PendingActionUpdateOne) ClearRuleID() *PendingActionUpdateOne {
	_u.mutation.ClearRuleID()
	return _u
}

// SetAgentSummary sets the "agent_summary" field.
func (_u *PendingActionUpdateOne) SetAgentSummary(v string) *PendingActionUpdateOne {
	_u.mutation.SetAgentSummary(v)
	return _u
}

// SetNillableAgentSummary sets the "agent_summary" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableAgentSummary(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetAgentSummary(*v)
	}
	return _u
}

// ClearAgentSummary clears the value of the "agent_summary" field.
func (_u *PendingActionUpdateOne) ClearAgentSummary() *PendingActionUpdateOne {
	_u.mutation.ClearAgentSummary()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PendingActionUpdateOne) SetSessionID(v string) *PendingActionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableSessionID(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PendingActionUpdateOne) ClearSessionID() *PendingActionUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *PendingActionUpdateOne) SetRiskTier(v pendingaction.RiskTier) *PendingActionUpdateOne {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableRiskTier(v *pendingaction.RiskTier) *PendingActionUpdateOne {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetNeedsReconciliation sets the "needs_reconciliation" field.
func (_u *PendingActionUpdateOne) SetNeedsReconciliation(v bool) *PendingActionUpdateOne {
	_u.mutation.SetNeedsReconciliation(v)
	return _u
}

// SetNillableNeedsReconciliation sets the "needs_reconciliation" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableNeedsReconciliation(v *bool) *PendingActionUpdateOne {
	if v != nil {
		_u.SetNeedsReconciliation(*v)
	}
	return _u
}

// SetDispatchEpoch sets the "dispatch_epoch" field.
func (_u *PendingActionUpdateOne) SetDispatchEpoch(v string) *PendingActionUpdateOne {
	_u.mutation.SetDispatchEpoch(v)
	return _u
}

// SetNillableDispatchEpoch sets the "dispatch_epoch" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableDispatchEpoch(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetDispatchEpoch(*v)
	}
	return _u
}

// ClearDispatchEpoch clears the value of the "dispatch_epoch" field.
func (_u *PendingActionUpdateOne) ClearDispatchEpoch() *PendingActionUpdateOne {
	_u.mutation.ClearDispatchEpoch()
	return _u
}

// Mutation returns the PendingActionMutation object of the builder.
func (_u *PendingActionUpdateOne) Mutation() *PendingActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingActionUpdate builder.
func (_u *PendingActionUpdateOne) Where(ps ...predicate.PendingAction) *PendingActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingActionUpdateOne) Select(field string, fields ...string) *PendingActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingAction entity.
func (_u *PendingActionUpdateOne) Save(ctx context.Context) (*PendingAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingActionUpdateOne) SaveX(ctx context.Context) *PendingAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingActionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := pendingaction.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "PendingAction.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingActionUpdateOne) sqlSave(ctx context.Context) (_node *PendingAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingaction.Table, pendingaction.Columns, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingaction.FieldID)
		for _, f := range fields {
			if !pendingaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingaction.FieldID {
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
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(pendingaction.FieldToolArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(pendingaction.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(pendingaction.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(pendingaction.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(pendingaction.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionResult(); ok {
		_spec.SetField(pendingaction.FieldExecutionResult, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionResultCleared() {
		_spec.ClearField(pendingaction.FieldExecutionResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(pendingaction.FieldRuleID, field.TypeString, value)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(pendingaction.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentSummary(); ok {
		_spec.SetField(pendingaction.FieldAgentSummary, field.TypeString, value)
	}
	if _u.mutation.AgentSummaryCleared() {
		_spec.ClearField(pendingaction.FieldAgentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pendingaction.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pendingaction.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(pendingaction.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReconciliation(); ok {
		_spec.SetField(pendingaction.FieldNeedsReconciliation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DispatchEpoch(); ok {
		_spec.SetField(pendingaction.FieldDispatchEpoch, field.TypeString, value)
	}
	if _u.mutation.DispatchEpochCleared() {
		_spec.ClearField(pendingaction.FieldDispatchEpoch, field.TypeString)
	}
	_node = &PendingAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
