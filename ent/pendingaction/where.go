// Code generated by ent, DO NOT EDIT.

package pendingaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldID, id))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldToolName, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldRequestedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldExpiresAt, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedAt, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldRuleID, v))
}

// AgentSummary applies equality check predicate on the "agent_summary" field. It's identical to AgentSummaryEQ.
func AgentSummary(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldAgentSummary, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldSessionID, v))
}

// NeedsReconciliation applies equality check predicate on the "needs_reconciliation" field. It's identical to NeedsReconciliationEQ.
func NeedsReconciliation(v bool) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldNeedsReconciliation, v))
}

// DispatchEpoch applies equality check predicate on the "dispatch_epoch" field. It's identical to DispatchEpochEQ.
func DispatchEpoch(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDispatchEpoch, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldToolName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldRequestedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldExpiresAt, v))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByContains applies the Contains predicate on the "decided_by" field.
func DecidedByContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldDecidedBy, v))
}

// DecidedByHasPrefix applies the HasPrefix predicate on the "decided_by" field.
func DecidedByHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldDecidedBy, v))
}

// DecidedByHasSuffix applies the HasSuffix predicate on the "decided_by" field.
func DecidedByHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedByEqualFold applies the EqualFold predicate on the "decided_by" field.
func DecidedByEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldDecidedBy, v))
}

// DecidedByContainsFold applies the ContainsFold predicate on the "decided_by" field.
func DecidedByContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldDecidedBy, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldDecidedAt))
}

// ExecutionResultIsNil applies the IsNil predicate on the "execution_result" field.
func ExecutionResultIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldExecutionResult))
}

// ExecutionResultNotNil applies the NotNil predicate on the "execution_result" field.
func ExecutionResultNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldExecutionResult))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDIsNil applies the IsNil predicate on the "rule_id" field.
func RuleIDIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldRuleID))
}

// RuleIDNotNil applies the NotNil predicate on the "rule_id" field.
func RuleIDNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldRuleID))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldRuleID, v))
}

// AgentSummaryEQ applies the EQ predicate on the "agent_summary" field.
func AgentSummaryEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldAgentSummary, v))
}

// AgentSummaryNEQ applies the NEQ predicate on the "agent_summary" field.
func AgentSummaryNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldAgentSummary, v))
}

// AgentSummaryIn applies the In predicate on the "agent_summary" field.
func AgentSummaryIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldAgentSummary, vs...))
}

// AgentSummaryNotIn applies the NotIn predicate on the "agent_summary" field.
func AgentSummaryNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldAgentSummary, vs...))
}

// AgentSummaryGT applies the GT predicate on the "agent_summary" field.
func AgentSummaryGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldAgentSummary, v))
}

// AgentSummaryGTE applies the GTE predicate on the "agent_summary" field.
func AgentSummaryGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldAgentSummary, v))
}

// AgentSummaryLT applies the LT predicate on the "agent_summary" field.
func AgentSummaryLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldAgentSummary, v))
}

// AgentSummaryLTE applies the LTE predicate on the "agent_summary" field.
func AgentSummaryLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldAgentSummary, v))
}

// AgentSummaryContains applies the Contains predicate on the "agent_summary" field.
func AgentSummaryContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldAgentSummary, v))
}

// AgentSummaryHasPrefix applies the HasPrefix predicate on the "agent_summary" field.
func AgentSummaryHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldAgentSummary, v))
}

// AgentSummaryHasSuffix applies the HasSuffix predicate on the "agent_summary" field.
func AgentSummaryHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldAgentSummary, v))
}

// AgentSummaryIsNil applies the IsNil predicate on the "agent_summary" field.
func AgentSummaryIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldAgentSummary))
}

// AgentSummaryNotNil applies the NotNil predicate on the "agent_summary" field.
func AgentSummaryNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldAgentSummary))
}

// AgentSummaryEqualFold applies the EqualFold predicate on the "agent_summary" field.
func AgentSummaryEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldAgentSummary, v))
}

// AgentSummaryContainsFold applies the ContainsFold predicate on the "agent_summary" field.
func AgentSummaryContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldAgentSummary, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldSessionID, v))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldRiskTier, vs...))
}

// NeedsReconciliationEQ applies the EQ predicate on the "needs_reconciliation" field.
func NeedsReconciliationEQ(v bool) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldNeedsReconciliation, v))
}

// NeedsReconciliationNEQ applies the NEQ predicate on the "needs_reconciliation" field.
func NeedsReconciliationNEQ(v bool) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldNeedsReconciliation, v))
}

// DispatchEpochEQ applies the EQ predicate on the "dispatch_epoch" field.
func DispatchEpochEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDispatchEpoch, v))
}

// DispatchEpochNEQ applies the NEQ predicate on the "dispatch_epoch" field.
func DispatchEpochNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldDispatchEpoch, v))
}

// DispatchEpochIn applies the In predicate on the "dispatch_epoch" field.
func DispatchEpochIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldDispatchEpoch, vs...))
}

// DispatchEpochNotIn applies the NotIn predicate on the "dispatch_epoch" field.
func DispatchEpochNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldDispatchEpoch, vs...))
}

// DispatchEpochGT applies the GT predicate on the "dispatch_epoch" field.
func DispatchEpochGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldDispatchEpoch, v))
}

// DispatchEpochGTE applies the GTE predicate on the "dispatch_epoch" field.
func DispatchEpochGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldDispatchEpoch, v))
}

// DispatchEpochLT applies the LT predicate on the "dispatch_epoch" field.
func DispatchEpochLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldDispatchEpoch, v))
}

// DispatchEpochLTE applies the LTE predicate on the "dispatch_epoch" field.
func DispatchEpochLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldDispatchEpoch, v))
}

// DispatchEpochContains applies the Contains predicate on the "dispatch_epoch" field.
func DispatchEpochContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldDispatchEpoch, v))
}

// DispatchEpochHasPrefix applies the HasPrefix predicate on the "dispatch_epoch" field.
func DispatchEpochHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldDispatchEpoch, v))
}

// DispatchEpochHasSuffix applies the HasSuffix predicate on the "dispatch_epoch" field.
func DispatchEpochHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldDispatchEpoch, v))
}

// DispatchEpochIsNil applies the IsNil predicate on the "dispatch_epoch" field.
func DispatchEpochIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldDispatchEpoch))
}

// DispatchEpochNotNil applies the NotNil predicate on the "dispatch_epoch" field.
func DispatchEpochNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldDispatchEpoch))
}

// DispatchEpochEqualFold applies the EqualFold predicate on the "dispatch_epoch" field.
func DispatchEpochEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldDispatchEpoch, v))
}

// DispatchEpochContainsFold applies the ContainsFold predicate on the "dispatch_epoch" field.
func DispatchEpochContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldDispatchEpoch, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.NotPredicates(p))
}
