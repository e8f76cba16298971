// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldName, v))
}

// Cron applies equality check predicate on the "cron" field. It's identical to CronEQ.
func Cron(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCron, v))
}

// StartAt applies equality check predicate on the "start_at" field. It's identical to StartAtEQ.
func StartAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldStartAt, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPrompt, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldEnabled, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// LastResult applies equality check predicate on the "last_result" field. It's identical to LastResultEQ.
func LastResult(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastResult, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextRunAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldName, v))
}

// CronEQ applies the EQ predicate on the "cron" field.
func CronEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCron, v))
}

// CronNEQ applies the NEQ predicate on the "cron" field.
func CronNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCron, v))
}

// CronIn applies the In predicate on the "cron" field.
func CronIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCron, vs...))
}

// CronNotIn applies the NotIn predicate on the "cron" field.
func CronNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCron, vs...))
}

// CronGT applies the GT predicate on the "cron" field.
func CronGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCron, v))
}

// CronGTE applies the GTE predicate on the "cron" field.
func CronGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCron, v))
}

// CronLT applies the LT predicate on the "cron" field.
func CronLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCron, v))
}

// CronLTE applies the LTE predicate on the "cron" field.
func CronLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCron, v))
}

// CronContains applies the Contains predicate on the "cron" field.
func CronContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldCron, v))
}

// CronHasPrefix applies the HasPrefix predicate on the "cron" field.
func CronHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldCron, v))
}

// CronHasSuffix applies the HasSuffix predicate on the "cron" field.
func CronHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldCron, v))
}

// CronIsNil applies the IsNil predicate on the "cron" field.
func CronIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldCron))
}

// CronNotNil applies the NotNil predicate on the "cron" field.
func CronNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldCron))
}

// CronEqualFold applies the EqualFold predicate on the "cron" field.
func CronEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldCron, v))
}

// CronContainsFold applies the ContainsFold predicate on the "cron" field.
func CronContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldCron, v))
}

// StartAtEQ applies the EQ predicate on the "start_at" field.
func StartAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldStartAt, v))
}

// StartAtNEQ applies the NEQ predicate on the "start_at" field.
func StartAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldStartAt, v))
}

// StartAtIn applies the In predicate on the "start_at" field.
func StartAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldStartAt, vs...))
}

// StartAtNotIn applies the NotIn predicate on the "start_at" field.
func StartAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldStartAt, vs...))
}

// StartAtGT applies the GT predicate on the "start_at" field.
func StartAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldStartAt, v))
}

// StartAtGTE applies the GTE predicate on the "start_at" field.
func StartAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldStartAt, v))
}

// StartAtLT applies the LT predicate on the "start_at" field.
func StartAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldStartAt, v))
}

// StartAtLTE applies the LTE predicate on the "start_at" field.
func StartAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldStartAt, v))
}

// StartAtIsNil applies the IsNil predicate on the "start_at" field.
func StartAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldStartAt))
}

// StartAtNotNil applies the NotNil predicate on the "start_at" field.
func StartAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldStartAt))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldPrompt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldSource, vs...))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldEnabled, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastRunAt))
}

// LastResultEQ applies the EQ predicate on the "last_result" field.
func LastResultEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastResult, v))
}

// LastResultNEQ applies the NEQ predicate on the "last_result" field.
func LastResultNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastResult, v))
}

// LastResultIn applies the In predicate on the "last_result" field.
func LastResultIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastResult, vs...))
}

// LastResultNotIn applies the NotIn predicate on the "last_result" field.
func LastResultNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastResult, vs...))
}

// LastResultGT applies the GT predicate on the "last_result" field.
func LastResultGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastResult, v))
}

// LastResultGTE applies the GTE predicate on the "last_result" field.
func LastResultGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastResult, v))
}

// LastResultLT applies the LT predicate on the "last_result" field.
func LastResultLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastResult, v))
}

// LastResultLTE applies the LTE predicate on the "last_result" field.
func LastResultLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastResult, v))
}

// LastResultContains applies the Contains predicate on the "last_result" field.
func LastResultContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldLastResult, v))
}

// LastResultHasPrefix applies the HasPrefix predicate on the "last_result" field.
func LastResultHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldLastResult, v))
}

// LastResultHasSuffix applies the HasSuffix predicate on the "last_result" field.
func LastResultHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldLastResult, v))
}

// LastResultIsNil applies the IsNil predicate on the "last_result" field.
func LastResultIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastResult))
}

// LastResultNotNil applies the NotNil predicate on the "last_result" field.
func LastResultNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastResult))
}

// LastResultEqualFold applies the EqualFold predicate on the "last_result" field.
func LastResultEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldLastResult, v))
}

// LastResultContainsFold applies the ContainsFold predicate on the "last_result" field.
func LastResultContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldLastResult, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldNextRunAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.NotPredicates(p))
}
