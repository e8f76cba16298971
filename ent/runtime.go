// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/contact"
	"github.com/butlerhq/butlerd/ent/contactchannel"
	"github.com/butlerhq/butlerd/ent/inboxrecord"
	"github.com/butlerhq/butlerd/ent/kventry"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/ent/schema"
	"github.com/butlerhq/butlerd/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvaleventFields := schema.ApprovalEvent{}.Fields()
	_ = approvaleventFields
	// approvaleventDescOccurredAt is the schema descriptor for occurred_at field.
	approvaleventDescOccurredAt := approvaleventFields[5].Descriptor()
	// approvalevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	approvalevent.DefaultOccurredAt = approvaleventDescOccurredAt.Default.(func() time.Time)
	approvalruleFields := schema.ApprovalRule{}.Fields()
	_ = approvalruleFields
	// approvalruleDescCreatedAt is the schema descriptor for created_at field.
	approvalruleDescCreatedAt := approvalruleFields[4].Descriptor()
	// approvalrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrule.DefaultCreatedAt = approvalruleDescCreatedAt.Default.(func() time.Time)
	// approvalruleDescActive is the schema descriptor for active field.
	approvalruleDescActive := approvalruleFields[5].Descriptor()
	// approvalrule.DefaultActive holds the default value on creation for the active field.
	approvalrule.DefaultActive = approvalruleDescActive.Default.(bool)
	// approvalruleDescUseCount is the schema descriptor for use_count field.
	approvalruleDescUseCount := approvalruleFields[8].Descriptor()
	// approvalrule.DefaultUseCount holds the default value on creation for the use_count field.
	approvalrule.DefaultUseCount = approvalruleDescUseCount.Default.(int)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[5].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	contactchannelFields := schema.ContactChannel{}.Fields()
	_ = contactchannelFields
	// contactchannelDescIsPrimary is the schema descriptor for is_primary field.
	contactchannelDescIsPrimary := contactchannelFields[4].Descriptor()
	// contactchannel.DefaultIsPrimary holds the default value on creation for the is_primary field.
	contactchannel.DefaultIsPrimary = contactchannelDescIsPrimary.Default.(bool)
	// contactchannelDescSecured is the schema descriptor for secured field.
	contactchannelDescSecured := contactchannelFields[5].Descriptor()
	// contactchannel.DefaultSecured holds the default value on creation for the secured field.
	contactchannel.DefaultSecured = contactchannelDescSecured.Default.(bool)
	// contactchannelDescCreatedAt is the schema descriptor for created_at field.
	contactchannelDescCreatedAt := contactchannelFields[6].Descriptor()
	// contactchannel.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactchannel.DefaultCreatedAt = contactchannelDescCreatedAt.Default.(func() time.Time)
	inboxrecordFields := schema.InboxRecord{}.Fields()
	_ = inboxrecordFields
	// inboxrecordDescIngestedAt is the schema descriptor for ingested_at field.
	inboxrecordDescIngestedAt := inboxrecordFields[4].Descriptor()
	// inboxrecord.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	inboxrecord.DefaultIngestedAt = inboxrecordDescIngestedAt.Default.(func() time.Time)
	kventryFields := schema.KVEntry{}.Fields()
	_ = kventryFields
	// kventryDescUpdatedAt is the schema descriptor for updated_at field.
	kventryDescUpdatedAt := kventryFields[2].Descriptor()
	// kventry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	kventry.DefaultUpdatedAt = kventryDescUpdatedAt.Default.(func() time.Time)
	// kventry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	kventry.UpdateDefaultUpdatedAt = kventryDescUpdatedAt.UpdateDefault.(func() time.Time)
	pendingactionFields := schema.PendingAction{}.Fields()
	_ = pendingactionFields
	// pendingactionDescRequestedAt is the schema descriptor for requested_at field.
	pendingactionDescRequestedAt := pendingactionFields[4].Descriptor()
	// pendingaction.DefaultRequestedAt holds the default value on creation for the requested_at field.
	pendingaction.DefaultRequestedAt = pendingactionDescRequestedAt.Default.(func() time.Time)
	// pendingactionDescNeedsReconciliation is the schema descriptor for needs_reconciliation field.
	pendingactionDescNeedsReconciliation := pendingactionFields[13].Descriptor()
	// pendingaction.DefaultNeedsReconciliation holds the default value on creation for the needs_reconciliation field.
	pendingaction.DefaultNeedsReconciliation = pendingactionDescNeedsReconciliation.Default.(bool)
	scheduledtaskFields := schema.ScheduledTask{}.Fields()
	_ = scheduledtaskFields
	// scheduledtaskDescEnabled is the schema descriptor for enabled field.
	scheduledtaskDescEnabled := scheduledtaskFields[6].Descriptor()
	// scheduledtask.DefaultEnabled holds the default value on creation for the enabled field.
	scheduledtask.DefaultEnabled = scheduledtaskDescEnabled.Default.(bool)
	// scheduledtaskDescCreatedAt is the schema descriptor for created_at field.
	scheduledtaskDescCreatedAt := scheduledtaskFields[10].Descriptor()
	// scheduledtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledtask.DefaultCreatedAt = scheduledtaskDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[3].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
}
