package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/models"
)

// listApprovalsHandler handles GET /api/v1/approvals.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	filters := models.ActionFilters{
		Status:    c.QueryParam("status"),
		ToolName:  c.QueryParam("tool_name"),
		SessionID: c.QueryParam("session_id"),
	}
	if v := c.QueryParam("needs_reconciliation"); v != "" {
		flag, err := strconv.ParseBool(v)
		if err != nil {
			return newAPIError(http.StatusUnprocessableEntity, codeValidation,
				"needs_reconciliation must be a boolean", b.Name)
		}
		filters.NeedsReconciliation = &flag
	}

	params := parseListParams(c)
	actions, total, err := b.Queries.ListActions(c.Request().Context(), filters, params)
	if err != nil {
		return mapServiceError(b.Name, err)
	}

	return c.JSON(http.StatusOK, &ListResponse{
		Items:      actions,
		Pagination: Pagination{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

// getApprovalHandler handles GET /api/v1/approvals/:id.
func (s *Server) getApprovalHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	actionID := c.Param("id")
	if actionID == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "action id is required", b.Name)
	}

	action, err := b.Queries.GetAction(c.Request().Context(), actionID)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, action)
}

// decideApprovalHandler handles POST /api/v1/approvals/:id/decision.
func (s *Server) decideApprovalHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	actionID := c.Param("id")
	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "invalid request body", b.Name)
	}
	if req.Actor == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "actor is required", b.Name)
	}

	ctx := c.Request().Context()
	switch req.Decision {
	case "approve":
		action, err := b.Decisions.Approve(ctx, actionID, req.Actor, req.Reason)
		if err != nil {
			return mapServiceError(b.Name, err)
		}
		return c.JSON(http.StatusOK, action)
	case "reject":
		action, err := b.Decisions.Reject(ctx, actionID, req.Actor, req.Reason)
		if err != nil {
			// Rejecting an expired action round-trips the expired state;
			// there is no conflict to report, the action is simply gone.
			if errors.Is(err, approval.ErrActionExpired) && action != nil {
				return c.JSON(http.StatusOK, action)
			}
			return mapServiceError(b.Name, err)
		}
		return c.JSON(http.StatusOK, action)
	default:
		return newAPIError(http.StatusUnprocessableEntity, codeValidation,
			"decision must be approve or reject", b.Name)
	}
}

// batchDecideHandler handles POST /api/v1/approvals/batch. Each action is
// decided independently; per-action failures come back in the results.
func (s *Server) batchDecideHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	var req models.BatchDecisionRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "invalid request body", b.Name)
	}
	if len(req.ActionIDs) == 0 {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "action_ids is required", b.Name)
	}
	if req.Actor == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "actor is required", b.Name)
	}
	if req.Decision != "approve" && req.Decision != "reject" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation,
			"decision must be approve or reject", b.Name)
	}

	results := b.Decisions.BatchDecide(c.Request().Context(), req)
	return c.JSON(http.StatusOK, map[string]interface{}{"results": results})
}

// listRulesHandler handles GET /api/v1/approvals/rules.
func (s *Server) listRulesHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	activeOnly := false
	if v := c.QueryParam("active"); v != "" {
		flag, err := strconv.ParseBool(v)
		if err != nil {
			return newAPIError(http.StatusUnprocessableEntity, codeValidation,
				"active must be a boolean", b.Name)
		}
		activeOnly = flag
	}

	rules, err := b.Queries.ListRules(c.Request().Context(), activeOnly)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"rules": rules})
}

// createRuleHandler handles POST /api/v1/approvals/rules.
func (s *Server) createRuleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	var req createRuleRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "invalid request body", b.Name)
	}
	if req.Actor == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "actor is required", b.Name)
	}

	ctx := c.Request().Context()
	if req.FromActionID != "" {
		rule, err := b.Decisions.CreateRuleFromAction(ctx, req.FromActionID, req.spec(), req.Actor)
		if err != nil {
			return mapServiceError(b.Name, err)
		}
		return c.JSON(http.StatusCreated, rule)
	}

	if req.ToolName == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "tool_name is required", b.Name)
	}
	rule, err := b.Decisions.CreateRule(ctx, req.spec(), req.Actor)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusCreated, rule)
}

// revokeRuleHandler handles DELETE /api/v1/approvals/rules/:id. Rules are
// never deleted; revocation deactivates them and leaves the audit trail.
func (s *Server) revokeRuleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	ruleID := c.Param("id")
	actor := c.QueryParam("actor")
	if actor == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "actor is required", b.Name)
	}

	if err := b.Decisions.RevokeRule(c.Request().Context(), ruleID, actor, c.QueryParam("reason")); err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.NoContent(http.StatusNoContent)
}
