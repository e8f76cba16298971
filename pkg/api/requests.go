package api

import (
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/models"
)

// decisionRequest is the body of POST /approvals/:id/decision.
type decisionRequest struct {
	Decision string `json:"decision"`
	Actor    string `json:"actor"`
	Reason   string `json:"reason,omitempty"`
}

// createRuleRequest is the body of POST /approvals/rules. When FromActionID
// is set the rule is derived from that action's stored args and the explicit
// fields act as overrides.
type createRuleRequest struct {
	ToolName       string                          `json:"tool_name,omitempty"`
	ArgConstraints map[string]models.ArgConstraint `json:"arg_constraints,omitempty"`
	Description    string                          `json:"description,omitempty"`
	ExpiresAt      *time.Time                      `json:"expires_at,omitempty"`
	MaxUses        *int                            `json:"max_uses,omitempty"`
	RiskTier       string                          `json:"risk_tier,omitempty"`
	FromActionID   string                          `json:"from_action_id,omitempty"`
	Actor          string                          `json:"actor"`
}

func (r createRuleRequest) spec() models.RuleSpec {
	return models.RuleSpec{
		ToolName:       r.ToolName,
		ArgConstraints: r.ArgConstraints,
		Description:    r.Description,
		ExpiresAt:      r.ExpiresAt,
		MaxUses:        r.MaxUses,
		RiskTier:       r.RiskTier,
	}
}

// toggleRequest is the body of POST /schedules/:name/toggle. A missing
// enabled field flips the current state.
type toggleRequest struct {
	Enabled *bool `json:"enabled,omitempty"`
}

// parseListParams reads the shared pagination query parameters. Out-of-range
// values fall back to defaults rather than erroring.
func parseListParams(c *echo.Context) models.ListParams {
	params := models.ListParams{Page: 1, PageSize: 25}
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			params.PageSize = ps
		}
	}
	return params
}
