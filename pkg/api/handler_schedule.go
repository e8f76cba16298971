package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/models"
)

// listSchedulesHandler handles GET /api/v1/schedules.
func (s *Server) listSchedulesHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	tasks, err := b.Tasks.List(c.Request().Context())
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// createScheduleHandler handles POST /api/v1/schedules.
func (s *Server) createScheduleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "invalid request body", b.Name)
	}

	task, err := b.Tasks.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusCreated, task)
}

// getScheduleHandler handles GET /api/v1/schedules/:name.
func (s *Server) getScheduleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	task, err := b.Tasks.Find(c.Request().Context(), c.Param("name"))
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, task)
}

// updateScheduleHandler handles PATCH /api/v1/schedules/:name. Absent fields
// are left unchanged.
func (s *Server) updateScheduleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	task, err := b.Tasks.Find(ctx, c.Param("name"))
	if err != nil {
		return mapServiceError(b.Name, err)
	}

	var req models.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "invalid request body", b.Name)
	}

	task, err = b.Tasks.Update(ctx, task.ID, req)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, task)
}

// deleteScheduleHandler handles DELETE /api/v1/schedules/:name.
// Config-sourced tasks are rejected with a conflict.
func (s *Server) deleteScheduleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	task, err := b.Tasks.Find(ctx, c.Param("name"))
	if err != nil {
		return mapServiceError(b.Name, err)
	}

	if err := b.Tasks.Delete(ctx, task.ID); err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// toggleScheduleHandler handles POST /api/v1/schedules/:name/toggle. An
// explicit enabled field sets the state; an empty body flips it.
func (s *Server) toggleScheduleHandler(c *echo.Context) error {
	b, err := s.resolveBackend(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	task, err := b.Tasks.Find(ctx, c.Param("name"))
	if err != nil {
		return mapServiceError(b.Name, err)
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusUnprocessableEntity, codeValidation, "invalid request body", b.Name)
	}
	enabled := !task.Enabled
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	task, err = b.Tasks.Toggle(ctx, task.ID, enabled)
	if err != nil {
		return mapServiceError(b.Name, err)
	}
	return c.JSON(http.StatusOK, task)
}
