// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalEventsColumns holds the columns for the "approval_events" table.
	ApprovalEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"action_queued", "auto_approved", "approved", "rejected", "expired", "execution_succeeded", "execution_failed", "rule_created", "rule_revoked"}},
		{Name: "action_id", Type: field.TypeString, Nullable: true},
		{Name: "rule_id", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "payload_metadata", Type: field.TypeJSON, Nullable: true},
	}
	// ApprovalEventsTable holds the schema information for the "approval_events" table.
	ApprovalEventsTable = &schema.Table{
		Name:       "approval_events",
		Columns:    ApprovalEventsColumns,
		PrimaryKey: []*schema.Column{ApprovalEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalevent_action_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalEventsColumns[2]},
			},
			{
				Name:    "approvalevent_rule_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalEventsColumns[3]},
			},
			{
				Name:    "approvalevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{ApprovalEventsColumns[1]},
			},
			{
				Name:    "approvalevent_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalEventsColumns[5]},
			},
		},
	}
	// ApprovalRulesColumns holds the columns for the "approval_rules" table.
	ApprovalRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arg_constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_uses", Type: field.TypeInt, Nullable: true},
		{Name: "use_count", Type: field.TypeInt, Default: 0},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "created_from_action_id", Type: field.TypeString, Nullable: true},
	}
	// ApprovalRulesTable holds the schema information for the "approval_rules" table.
	ApprovalRulesTable = &schema.Table{
		Name:       "approval_rules",
		Columns:    ApprovalRulesColumns,
		PrimaryKey: []*schema.Column{ApprovalRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrule_tool_name_active",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRulesColumns[1], ApprovalRulesColumns[5]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "contact_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "roles", Type: field.TypeJSON, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
	}
	// ContactChannelsColumns holds the columns for the "contact_channels" table.
	ContactChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "channel_type", Type: field.TypeString},
		{Name: "channel_value", Type: field.TypeString},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "secured", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeString},
	}
	// ContactChannelsTable holds the schema information for the "contact_channels" table.
	ContactChannelsTable = &schema.Table{
		Name:       "contact_channels",
		Columns:    ContactChannelsColumns,
		PrimaryKey: []*schema.Column{ContactChannelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contact_channels_contacts_channels",
				Columns:    []*schema.Column{ContactChannelsColumns[6]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contactchannel_channel_type_channel_value",
				Unique:  true,
				Columns: []*schema.Column{ContactChannelsColumns[1], ContactChannelsColumns[2]},
			},
			{
				Name:    "contactchannel_contact_id",
				Unique:  false,
				Columns: []*schema.Column{ContactChannelsColumns[6]},
			},
		},
	}
	// InboxRecordsColumns holds the columns for the "inbox_records" table.
	InboxRecordsColumns = []*schema.Column{
		{Name: "inbox_id", Type: field.TypeString, Unique: true},
		{Name: "source_channel", Type: field.TypeString},
		{Name: "source_message_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "ingested_at", Type: field.TypeTime},
		{Name: "pipeline_request_id", Type: field.TypeString, Nullable: true},
	}
	// InboxRecordsTable holds the schema information for the "inbox_records" table.
	InboxRecordsTable = &schema.Table{
		Name:       "inbox_records",
		Columns:    InboxRecordsColumns,
		PrimaryKey: []*schema.Column{InboxRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inboxrecord_source_channel_source_message_id",
				Unique:  true,
				Columns: []*schema.Column{InboxRecordsColumns[1], InboxRecordsColumns[2]},
			},
		},
	}
	// KvEntriesColumns holds the columns for the "kv_entries" table.
	KvEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KvEntriesTable holds the schema information for the "kv_entries" table.
	KvEntriesTable = &schema.Table{
		Name:       "kv_entries",
		Columns:    KvEntriesColumns,
		PrimaryKey: []*schema.Column{KvEntriesColumns[0]},
	}
	// PendingActionsColumns holds the columns for the "pending_actions" table.
	PendingActionsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_args", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired", "executed"}, Default: "pending"},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_result", Type: field.TypeJSON, Nullable: true},
		{Name: "rule_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "needs_reconciliation", Type: field.TypeBool, Default: false},
		{Name: "dispatch_epoch", Type: field.TypeString, Nullable: true},
	}
	// PendingActionsTable holds the schema information for the "pending_actions" table.
	PendingActionsTable = &schema.Table{
		Name:       "pending_actions",
		Columns:    PendingActionsColumns,
		PrimaryKey: []*schema.Column{PendingActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingaction_status",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[3]},
			},
			{
				Name:    "pendingaction_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[3], PendingActionsColumns[5]},
			},
			{
				Name:    "pendingaction_tool_name",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[1]},
			},
			{
				Name:    "pendingaction_session_id",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[11]},
			},
		},
	}
	// ScheduledTasksColumns holds the columns for the "scheduled_tasks" table.
	ScheduledTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "cron", Type: field.TypeString, Nullable: true},
		{Name: "start_at", Type: field.TypeTime, Nullable: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"toml", "runtime"}},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScheduledTasksTable holds the schema information for the "scheduled_tasks" table.
	ScheduledTasksTable = &schema.Table{
		Name:       "scheduled_tasks",
		Columns:    ScheduledTasksColumns,
		PrimaryKey: []*schema.Column{ScheduledTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledtask_enabled_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[6], ScheduledTasksColumns[9]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "butler", Type: field.TypeString},
		{Name: "trigger_kind", Type: field.TypeEnum, Enums: []string{"ingest", "schedule", "manual"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "input_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_butler_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[3]},
			},
			{
				Name:    "session_trigger_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalEventsTable,
		ApprovalRulesTable,
		ContactsTable,
		ContactChannelsTable,
		InboxRecordsTable,
		KvEntriesTable,
		PendingActionsTable,
		ScheduledTasksTable,
		SessionsTable,
	}
)

func init() {
	ContactChannelsTable.ForeignKeys[0].RefTable = ContactsTable
}
