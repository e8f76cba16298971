package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/models"
)

// listAuditHandler handles GET /api/v1/audit. The audit log is append-only;
// this is the only read surface over it.
func (s *Server) listAuditHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	filters := models.AuditFilters{
		ActionID:  c.QueryParam("action_id"),
		RuleID:    c.QueryParam("rule_id"),
		EventType: c.QueryParam("event_type"),
	}
	if v := c.QueryParam("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return newAPIError(http.StatusUnprocessableEntity, codeValidation,
				"since must be RFC3339", b.Name)
		}
		filters.Since = &since
	}

	params := parseListParams(c)
	events, total, err := b.Queries.ListAudit(c.Request().Context(), filters, params)
	if err != nil {
		return mapServiceError(b.Name, err)
	}

	return c.JSON(http.StatusOK, &ListResponse{
		Items:      events,
		Pagination: Pagination{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}
