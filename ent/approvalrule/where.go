// Code generated by ent, DO NOT EDIT.

package approvalrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldID, id))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldToolName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedAt, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldActive, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldExpiresAt, v))
}

// MaxUses applies equality check predicate on the "max_uses" field. It's identical to MaxUsesEQ.
func MaxUses(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldMaxUses, v))
}

// UseCount applies equality check predicate on the "use_count" field. It's identical to UseCountEQ.
func UseCount(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldUseCount, v))
}

// CreatedFromActionID applies equality check predicate on the "created_from_action_id" field. It's identical to CreatedFromActionIDEQ.
func CreatedFromActionID(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedFromActionID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldToolName, v))
}

// ArgConstraintsIsNil applies the IsNil predicate on the "arg_constraints" field.
func ArgConstraintsIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldArgConstraints))
}

// ArgConstraintsNotNil applies the NotNil predicate on the "arg_constraints" field.
func ArgConstraintsNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldArgConstraints))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldCreatedAt, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldActive, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldExpiresAt))
}

// MaxUsesEQ applies the EQ predicate on the "max_uses" field.
func MaxUsesEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldMaxUses, v))
}

// MaxUsesNEQ applies the NEQ predicate on the "max_uses" field.
func MaxUsesNEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldMaxUses, v))
}

// MaxUsesIn applies the In predicate on the "max_uses" field.
func MaxUsesIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldMaxUses, vs...))
}

// MaxUsesNotIn applies the NotIn predicate on the "max_uses" field.
func MaxUsesNotIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldMaxUses, vs...))
}

// MaxUsesGT applies the GT predicate on the "max_uses" field.
func MaxUsesGT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldMaxUses, v))
}

// MaxUsesGTE applies the GTE predicate on the "max_uses" field.
func MaxUsesGTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldMaxUses, v))
}

// MaxUsesLT applies the LT predicate on the "max_uses" field.
func MaxUsesLT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldMaxUses, v))
}

// MaxUsesLTE applies the LTE predicate on the "max_uses" field.
func MaxUsesLTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldMaxUses, v))
}

// MaxUsesIsNil applies the IsNil predicate on the "max_uses" field.
func MaxUsesIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldMaxUses))
}

// MaxUsesNotNil applies the NotNil predicate on the "max_uses" field.
func MaxUsesNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldMaxUses))
}

// UseCountEQ applies the EQ predicate on the "use_count" field.
func UseCountEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldUseCount, v))
}

// UseCountNEQ applies the NEQ predicate on the "use_count" field.
func UseCountNEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldUseCount, v))
}

// UseCountIn applies the In predicate on the "use_count" field.
func UseCountIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldUseCount, vs...))
}

// UseCountNotIn applies the NotIn predicate on the "use_count" field.
func UseCountNotIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldUseCount, vs...))
}

// UseCountGT applies the GT predicate on the "use_count" field.
func UseCountGT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldUseCount, v))
}

// UseCountGTE applies the GTE predicate on the "use_count" field.
func UseCountGTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldUseCount, v))
}

// UseCountLT applies the LT predicate on the "use_count" field.
func UseCountLT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldUseCount, v))
}

// UseCountLTE applies the LTE predicate on the "use_count" field.
func UseCountLTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldUseCount, v))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldRiskTier, vs...))
}

// CreatedFromActionIDEQ applies the EQ predicate on the "created_from_action_id" field.
func CreatedFromActionIDEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDNEQ applies the NEQ predicate on the "created_from_action_id" field.
func CreatedFromActionIDNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDIn applies the In predicate on the "created_from_action_id" field.
func CreatedFromActionIDIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldCreatedFromActionID, vs...))
}

// CreatedFromActionIDNotIn applies the NotIn predicate on the "created_from_action_id" field.
func CreatedFromActionIDNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldCreatedFromActionID, vs...))
}

// CreatedFromActionIDGT applies the GT predicate on the "created_from_action_id" field.
func CreatedFromActionIDGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDGTE applies the GTE predicate on the "created_from_action_id" field.
func CreatedFromActionIDGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDLT applies the LT predicate on the "created_from_action_id" field.
func CreatedFromActionIDLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDLTE applies the LTE predicate on the "created_from_action_id" field.
func CreatedFromActionIDLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDContains applies the Contains predicate on the "created_from_action_id" field.
func CreatedFromActionIDContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDHasPrefix applies the HasPrefix predicate on the "created_from_action_id" field.
func CreatedFromActionIDHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDHasSuffix applies the HasSuffix predicate on the "created_from_action_id" field.
func CreatedFromActionIDHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDIsNil applies the IsNil predicate on the "created_from_action_id" field.
func CreatedFromActionIDIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldCreatedFromActionID))
}

// CreatedFromActionIDNotNil applies the NotNil predicate on the "created_from_action_id" field.
func CreatedFromActionIDNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldCreatedFromActionID))
}

// CreatedFromActionIDEqualFold applies the EqualFold predicate on the "created_from_action_id" field.
func CreatedFromActionIDEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldCreatedFromActionID, v))
}

// CreatedFromActionIDContainsFold applies the ContainsFold predicate on the "created_from_action_id" field.
func CreatedFromActionIDContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldCreatedFromActionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.NotPredicates(p))
}
