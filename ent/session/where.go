// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// Butler applies equality check predicate on the "butler" field. It's identical to ButlerEQ.
func Butler(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldButler, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// InputPrompt applies equality check predicate on the "input_prompt" field. It's identical to InputPromptEQ.
func InputPrompt(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInputPrompt, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldOutputSummary, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldError, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCost, v))
}

// ButlerEQ applies the EQ predicate on the "butler" field.
func ButlerEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldButler, v))
}

// ButlerNEQ applies the NEQ predicate on the "butler" field.
func ButlerNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldButler, v))
}

// ButlerIn applies the In predicate on the "butler" field.
func ButlerIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldButler, vs...))
}

// ButlerNotIn applies the NotIn predicate on the "butler" field.
func ButlerNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldButler, vs...))
}

// ButlerGT applies the GT predicate on the "butler" field.
func ButlerGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldButler, v))
}

// ButlerGTE applies the GTE predicate on the "butler" field.
func ButlerGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldButler, v))
}

// ButlerLT applies the LT predicate on the "butler" field.
func ButlerLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldButler, v))
}

// ButlerLTE applies the LTE predicate on the "butler" field.
func ButlerLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldButler, v))
}

// ButlerContains applies the Contains predicate on the "butler" field.
func ButlerContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldButler, v))
}

// ButlerHasPrefix applies the HasPrefix predicate on the "butler" field.
func ButlerHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldButler, v))
}

// ButlerHasSuffix applies the HasSuffix predicate on the "butler" field.
func ButlerHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldButler, v))
}

// ButlerEqualFold applies the EqualFold predicate on the "butler" field.
func ButlerEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldButler, v))
}

// ButlerContainsFold applies the ContainsFold predicate on the "butler" field.
func ButlerContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldButler, v))
}

// TriggerKindEQ applies the EQ predicate on the "trigger_kind" field.
func TriggerKindEQ(v TriggerKind) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTriggerKind, v))
}

// TriggerKindNEQ applies the NEQ predicate on the "trigger_kind" field.
func TriggerKindNEQ(v TriggerKind) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTriggerKind, v))
}

// TriggerKindIn applies the In predicate on the "trigger_kind" field.
func TriggerKindIn(vs ...TriggerKind) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTriggerKind, vs...))
}

// TriggerKindNotIn applies the NotIn predicate on the "trigger_kind" field.
func TriggerKindNotIn(vs ...TriggerKind) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTriggerKind, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// InputPromptEQ applies the EQ predicate on the "input_prompt" field.
func InputPromptEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInputPrompt, v))
}

// InputPromptNEQ applies the NEQ predicate on the "input_prompt" field.
func InputPromptNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldInputPrompt, v))
}

// InputPromptIn applies the In predicate on the "input_prompt" field.
func InputPromptIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldInputPrompt, vs...))
}

// InputPromptNotIn applies the NotIn predicate on the "input_prompt" field.
func InputPromptNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldInputPrompt, vs...))
}

// InputPromptGT applies the GT predicate on the "input_prompt" field.
func InputPromptGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldInputPrompt, v))
}

// InputPromptGTE applies the GTE predicate on the "input_prompt" field.
func InputPromptGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldInputPrompt, v))
}

// InputPromptLT applies the LT predicate on the "input_prompt" field.
func InputPromptLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldInputPrompt, v))
}

// InputPromptLTE applies the LTE predicate on the "input_prompt" field.
func InputPromptLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldInputPrompt, v))
}

// InputPromptContains applies the Contains predicate on the "input_prompt" field.
func InputPromptContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldInputPrompt, v))
}

// InputPromptHasPrefix applies the HasPrefix predicate on the "input_prompt" field.
func InputPromptHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldInputPrompt, v))
}

// InputPromptHasSuffix applies the HasSuffix predicate on the "input_prompt" field.
func InputPromptHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldInputPrompt, v))
}

// InputPromptEqualFold applies the EqualFold predicate on the "input_prompt" field.
func InputPromptEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldInputPrompt, v))
}

// InputPromptContainsFold applies the ContainsFold predicate on the "input_prompt" field.
func InputPromptContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldInputPrompt, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldOutputSummary, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldError, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCost))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
