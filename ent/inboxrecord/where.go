// Code generated by ent, DO NOT EDIT.

package inboxrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/butlerhq/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContainsFold(FieldID, id))
}

// SourceChannel applies equality check predicate on the "source_channel" field. It's identical to SourceChannelEQ.
func SourceChannel(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldSourceChannel, v))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldSourceMessageID, v))
}

// IngestedAt applies equality check predicate on the "ingested_at" field. It's identical to IngestedAtEQ.
func IngestedAt(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldIngestedAt, v))
}

// PipelineRequestID applies equality check predicate on the "pipeline_request_id" field. It's identical to PipelineRequestIDEQ.
func PipelineRequestID(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldPipelineRequestID, v))
}

// SourceChannelEQ applies the EQ predicate on the "source_channel" field.
func SourceChannelEQ(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldSourceChannel, v))
}

// SourceChannelNEQ applies the NEQ predicate on the "source_channel" field.
func SourceChannelNEQ(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNEQ(FieldSourceChannel, v))
}

// SourceChannelIn applies the In predicate on the "source_channel" field.
func SourceChannelIn(vs ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIn(FieldSourceChannel, vs...))
}

// SourceChannelNotIn applies the NotIn predicate on the "source_channel" field.
func SourceChannelNotIn(vs ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotIn(FieldSourceChannel, vs...))
}

// SourceChannelGT applies the GT predicate on the "source_channel" field.
func SourceChannelGT(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGT(FieldSourceChannel, v))
}

// SourceChannelGTE applies the GTE predicate on the "source_channel" field.
func SourceChannelGTE(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGTE(FieldSourceChannel, v))
}

// SourceChannelLT applies the LT predicate on the "source_channel" field.
func SourceChannelLT(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLT(FieldSourceChannel, v))
}

// SourceChannelLTE applies the LTE predicate on the "source_channel" field.
func SourceChannelLTE(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLTE(FieldSourceChannel, v))
}

// SourceChannelContains applies the Contains predicate on the "source_channel" field.
func SourceChannelContains(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContains(FieldSourceChannel, v))
}

// SourceChannelHasPrefix applies the HasPrefix predicate on the "source_channel" field.
func SourceChannelHasPrefix(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldHasPrefix(FieldSourceChannel, v))
}

// SourceChannelHasSuffix applies the HasSuffix predicate on the "source_channel" field.
func SourceChannelHasSuffix(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldHasSuffix(FieldSourceChannel, v))
}

// SourceChannelEqualFold applies the EqualFold predicate on the "source_channel" field.
func SourceChannelEqualFold(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEqualFold(FieldSourceChannel, v))
}

// SourceChannelContainsFold applies the ContainsFold predicate on the "source_channel" field.
func SourceChannelContainsFold(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContainsFold(FieldSourceChannel, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotNull(FieldPayload))
}

// IngestedAtEQ applies the EQ predicate on the "ingested_at" field.
func IngestedAtEQ(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldIngestedAt, v))
}

// IngestedAtNEQ applies the NEQ predicate on the "ingested_at" field.
func IngestedAtNEQ(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNEQ(FieldIngestedAt, v))
}

// IngestedAtIn applies the In predicate on the "ingested_at" field.
func IngestedAtIn(vs ...time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIn(FieldIngestedAt, vs...))
}

// IngestedAtNotIn applies the NotIn predicate on the "ingested_at" field.
func IngestedAtNotIn(vs ...time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotIn(FieldIngestedAt, vs...))
}

// IngestedAtGT applies the GT predicate on the "ingested_at" field.
func IngestedAtGT(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGT(FieldIngestedAt, v))
}

// IngestedAtGTE applies the GTE predicate on the "ingested_at" field.
func IngestedAtGTE(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGTE(FieldIngestedAt, v))
}

// IngestedAtLT applies the LT predicate on the "ingested_at" field.
func IngestedAtLT(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLT(FieldIngestedAt, v))
}

// IngestedAtLTE applies the LTE predicate on the "ingested_at" field.
func IngestedAtLTE(v time.Time) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLTE(FieldIngestedAt, v))
}

// PipelineRequestIDEQ applies the EQ predicate on the "pipeline_request_id" field.
func PipelineRequestIDEQ(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEQ(FieldPipelineRequestID, v))
}

// PipelineRequestIDNEQ applies the NEQ predicate on the "pipeline_request_id" field.
func PipelineRequestIDNEQ(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNEQ(FieldPipelineRequestID, v))
}

// PipelineRequestIDIn applies the In predicate on the "pipeline_request_id" field.
func PipelineRequestIDIn(vs ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIn(FieldPipelineRequestID, vs...))
}

// PipelineRequestIDNotIn applies the NotIn predicate on the "pipeline_request_id" field.
func PipelineRequestIDNotIn(vs ...string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotIn(FieldPipelineRequestID, vs...))
}

// PipelineRequestIDGT applies the GT predicate on the "pipeline_request_id" field.
func PipelineRequestIDGT(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGT(FieldPipelineRequestID, v))
}

// PipelineRequestIDGTE applies the GTE predicate on the "pipeline_request_id" field.
func PipelineRequestIDGTE(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldGTE(FieldPipelineRequestID, v))
}

// PipelineRequestIDLT applies the LT predicate on the "pipeline_request_id" field.
func PipelineRequestIDLT(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLT(FieldPipelineRequestID, v))
}

// PipelineRequestIDLTE applies the LTE predicate on the "pipeline_request_id" field.
func PipelineRequestIDLTE(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldLTE(FieldPipelineRequestID, v))
}

// PipelineRequestIDContains applies the Contains predicate on the "pipeline_request_id" field.
func PipelineRequestIDContains(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContains(FieldPipelineRequestID, v))
}

// PipelineRequestIDHasPrefix applies the HasPrefix predicate on the "pipeline_request_id" field.
func PipelineRequestIDHasPrefix(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldHasPrefix(FieldPipelineRequestID, v))
}

// PipelineRequestIDHasSuffix applies the HasSuffix predicate on the "pipeline_request_id" field.
func PipelineRequestIDHasSuffix(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldHasSuffix(FieldPipelineRequestID, v))
}

// PipelineRequestIDIsNil applies the IsNil predicate on the "pipeline_request_id" field.
func PipelineRequestIDIsNil() predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldIsNull(FieldPipelineRequestID))
}

// PipelineRequestIDNotNil applies the NotNil predicate on the "pipeline_request_id" field.
func PipelineRequestIDNotNil() predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldNotNull(FieldPipelineRequestID))
}

// PipelineRequestIDEqualFold applies the EqualFold predicate on the "pipeline_request_id" field.
func PipelineRequestIDEqualFold(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldEqualFold(FieldPipelineRequestID, v))
}

// PipelineRequestIDContainsFold applies the ContainsFold predicate on the "pipeline_request_id" field.
func PipelineRequestIDContainsFold(v string) predicate.InboxRecord {
	return predicate.InboxRecord(sql.FieldContainsFold(FieldPipelineRequestID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InboxRecord) predicate.InboxRecord {
	return predicate.InboxRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InboxRecord) predicate.InboxRecord {
	return predicate.InboxRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InboxRecord) predicate.InboxRecord {
	return predicate.InboxRecord(sql.NotPredicates(p))
}
