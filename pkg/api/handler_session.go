package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	params := parseListParams(c)
	sessions, total, err := b.Sessions.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(b.Name, err)
	}

	return c.JSON(http.StatusOK, &ListResponse{
		Items:      sessions,
		Pagination: Pagination{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "session id is required", b.Name)
	}

	sess, err := b.Sessions.Get(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// sessionTimelineHandler handles GET /api/v1/sessions/:id/timeline.
func (s *Server) sessionTimelineHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "session id is required", b.Name)
	}

	entries, err := b.Sessions.Timeline(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"entries":    entries,
	})
}
