// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalEvent is the predicate function for approvalevent builders.
type ApprovalEvent func(*sql.Selector)

// ApprovalRule is the predicate function for approvalrule builders.
type ApprovalRule func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// ContactChannel is the predicate function for contactchannel builders.
type ContactChannel func(*sql.Selector)

// InboxRecord is the predicate function for inboxrecord builders.
type InboxRecord func(*sql.Selector)

// KVEntry is the predicate function for kventry builders.
type KVEntry func(*sql.Selector)

// PendingAction is the predicate function for pendingaction builders.
type PendingAction func(*sql.Selector)

// ScheduledTask is the predicate function for scheduledtask builders.
type ScheduledTask func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
