// Code generated by ent, DO NOT EDIT.

package pendingaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pendingaction type in the database.
	Label = "pending_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "action_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldToolArgs holds the string denoting the tool_args field in the database.
	FieldToolArgs = "tool_args"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldDecidedBy holds the string denoting the decided_by field in the database.
	FieldDecidedBy = "decided_by"
	// FieldDecidedAt holds the string denoting the decided_at field in the database.
	FieldDecidedAt = "decided_at"
	// FieldExecutionResult holds the string denoting the execution_result field in the database.
	FieldExecutionResult = "execution_result"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldAgentSummary holds the string denoting the agent_summary field in the database.
	FieldAgentSummary = "agent_summary"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRiskTier holds the string denoting the risk_tier field in the database.
	FieldRiskTier = "risk_tier"
	// FieldNeedsReconciliation holds the string denoting the needs_reconciliation field in the database.
	FieldNeedsReconciliation = "needs_reconciliation"
	// FieldDispatchEpoch holds the string denoting the dispatch_epoch field in the database.
	FieldDispatchEpoch = "dispatch_epoch"
	// Table holds the table name of the pendingaction in the database.
	Table = "pending_actions"
)

// Columns holds all SQL columns for pendingaction fields.
var Columns = []string{
	FieldID,
	FieldToolName,
	FieldToolArgs,
	FieldStatus,
	FieldRequestedAt,
	FieldExpiresAt,
	FieldDecidedBy,
	FieldDecidedAt,
	FieldExecutionResult,
	FieldRuleID,
	FieldAgentSummary,
	FieldSessionID,
	FieldRiskTier,
	FieldNeedsReconciliation,
	FieldDispatchEpoch,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRequestedAt holds the default value on creation for the "requested_at" field.
	DefaultRequestedAt func() time.Time
	// DefaultNeedsReconciliation holds the default value on creation for the "needs_reconciliation" field.
	DefaultNeedsReconciliation bool
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
	StatusExecuted Status = "executed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired, StatusExecuted:
		return nil
	default:
		return fmt.Errorf("pendingaction: invalid enum value for status field: %q", s)
	}
}

// RiskTier defines the type for the "risk_tier" enum field.
type RiskTier string

// RiskTierMedium is the default value of the RiskTier enum.
const DefaultRiskTier = RiskTierMedium

// RiskTier values.
const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

func (rt RiskTier) String() string {
	return string(rt)
}

// RiskTierValidator is a validator for the "risk_tier" field enum values. It is called by the builders before save.
func RiskTierValidator(rt RiskTier) error {
	switch rt {
	case RiskTierLow, RiskTierMedium, RiskTierHigh, RiskTierCritical:
		return nil
	default:
		return fmt.Errorf("pendingaction: invalid enum value for risk_tier field: %q", rt)
	}
}

// OrderOption defines the ordering options for the PendingAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByDecidedBy orders the results by the decided_by field.
func ByDecidedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedBy, opts...).ToFunc()
}

// ByDecidedAt orders the results by the decided_at field.
func ByDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedAt, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByAgentSummary orders the results by the agent_summary field.
func ByAgentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentSummary, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRiskTier orders the results by the risk_tier field.
func ByRiskTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTier, opts...).ToFunc()
}

// ByNeedsReconciliation orders the results by the needs_reconciliation field.
func ByNeedsReconciliation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReconciliation, opts...).ToFunc()
}

// ByDispatchEpoch orders the results by the dispatch_epoch field.
func ByDispatchEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchEpoch, opts...).ToFunc()
}
