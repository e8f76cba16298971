package models

import (
	"fmt"
	"strings"
)

// Tool call result statuses returned to the worker over the local dispatch
// surface.
const (
	ToolStatusOK                  = "ok"
	ToolStatusPendingApproval     = "pending_approval"
	ToolStatusError               = "error"
	ToolStatusApprovalUnavailable = "approval_unavailable"
)

// ToolResult is the uniform envelope a tool call returns to the worker.
// Exactly one of the optional groups is populated depending on Status.
type ToolResult struct {
	Status string `json:"status"`

	// Populated for status "ok". Tool-specific payload; non-object handler
	// returns are coerced to {"value": …} by the executor.
	Data map[string]interface{} `json:"data,omitempty"`

	// Populated for status "pending_approval".
	ActionID string `json:"action_id,omitempty"`
	Message  string `json:"message,omitempty"`

	// Populated when an auto-approval rule matched.
	RuleID string `json:"rule_id,omitempty"`

	// Populated for status "error" / "approval_unavailable".
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
	Guidance  string `json:"guidance,omitempty"`
}

// OKResult builds a success envelope from a tool payload.
func OKResult(data map[string]interface{}) *ToolResult {
	return &ToolResult{Status: ToolStatusOK, Data: data}
}

// ErrorResult builds an error envelope.
func ErrorResult(errType, msg string) *ToolResult {
	return &ToolResult{Status: ToolStatusError, Error: msg, ErrorType: errType}
}

// UnavailableResult reports that a tool requires approval but the approvals
// module is disabled. The handler must not run; the guidance tells the
// worker how the action can still happen.
func UnavailableResult(toolName string) *ToolResult {
	return &ToolResult{
		Status:    ToolStatusApprovalUnavailable,
		Error:     fmt.Sprintf("tool %q requires approval but the approvals module is disabled", toolName),
		ErrorType: "ApprovalUnavailable",
		Guidance:  "Enable [modules.approvals] in the butler config, or ask the operator to perform this action manually.",
	}
}

// ApprovalDefault is a tool descriptor's default gating posture.
type ApprovalDefault string

// Approval defaults declared by module tool descriptors.
const (
	ApprovalNone        ApprovalDefault = "none"
	ApprovalConditional ApprovalDefault = "conditional"
	ApprovalAlways      ApprovalDefault = "always"
)

// ToolDescriptor describes one tool a module contributes to the worker
// manifest. Names must carry a user_/bot_ identity prefix.
type ToolDescriptor struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ApprovalDefault ApprovalDefault `json:"approval_default"`
}

// EffectiveApprovalDefault applies the safety-net heuristic: user-identity
// send and reply tools always require approval, whatever their descriptor
// says. A butler speaking as its operator is the highest-stakes output path.
func (d ToolDescriptor) EffectiveApprovalDefault() ApprovalDefault {
	if strings.HasPrefix(d.Name, "user_") &&
		(strings.Contains(d.Name, "_send") || strings.Contains(d.Name, "_reply")) {
		return ApprovalAlways
	}
	if d.ApprovalDefault == "" {
		return ApprovalNone
	}
	return d.ApprovalDefault
}
