// Package api serves the dashboard HTTP API. Handlers never write approval
// or schedule state directly; every mutation goes through the same service
// operations the tool surface uses.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/queue"
	"github.com/butlerhq/butlerd/pkg/scheduler"
	"github.com/butlerhq/butlerd/pkg/services"
)

// Backend bundles one butler's service handles. The dashboard can front
// several butlers at once; each gets its own backend keyed by butler name.
type Backend struct {
	Name      string
	Queries   *services.ApprovalQueryService
	Sessions  *services.SessionService
	Decisions *approval.Service
	Tasks     *scheduler.Service

	// Pool is nil when the dashboard runs detached from a butler process.
	Pool *queue.WorkerPool

	// Ping checks database reachability for health reporting.
	Ping func(ctx context.Context) error
}

// Server is the dashboard API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	backends      map[string]*Backend
	defaultButler string
}

// NewServer creates the API server over one or more butler backends. The
// first backend is the default when a request carries no butler selector.
func NewServer(backends ...*Backend) (*Server, error) {
	if len(backends) == 0 {
		return nil, fmt.Errorf("at least one backend is required")
	}

	s := &Server{
		backends:      make(map[string]*Backend, len(backends)),
		defaultButler: backends[0].Name,
	}
	for _, b := range backends {
		if _, dup := s.backends[b.Name]; dup {
			return nil, fmt.Errorf("duplicate backend for butler %q", b.Name)
		}
		s.backends[b.Name] = b
	}

	e := echo.New()
	e.HTTPErrorHandler = s.httpErrorHandler
	e.Use(securityHeaders())
	s.echo = e
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	v1 := s.echo.Group("/api/v1")

	v1.GET("/health", s.healthHandler)

	v1.GET("/approvals", s.listApprovalsHandler)
	v1.GET("/approvals/:id", s.getApprovalHandler)
	v1.POST("/approvals/:id/decision", s.decideApprovalHandler)
	v1.POST("/approvals/batch", s.batchDecideHandler)

	v1.GET("/approvals/rules", s.listRulesHandler)
	v1.POST("/approvals/rules", s.createRuleHandler)
	v1.DELETE("/approvals/rules/:id", s.revokeRuleHandler)

	v1.GET("/audit", s.listAuditHandler)

	v1.GET("/schedules", s.listSchedulesHandler)
	v1.POST("/schedules", s.createScheduleHandler)
	v1.GET("/schedules/:name", s.getScheduleHandler)
	v1.PATCH("/schedules/:name", s.updateScheduleHandler)
	v1.DELETE("/schedules/:name", s.deleteScheduleHandler)
	v1.POST("/schedules/:name/toggle", s.toggleScheduleHandler)

	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.GET("/sessions/:id/timeline", s.sessionTimelineHandler)
}

// resolveBackend selects the butler backend for a request. The selector is
// the "butler" query parameter; absent means the default backend.
func (s *Server) resolveBackend(c *echo.Context) (*Backend, error) {
	name := c.QueryParam("butler")
	if name == "" {
		name = s.defaultButler
	}
	b, ok := s.backends[name]
	if !ok {
		return nil, newAPIError(http.StatusNotFound, codeButlerNotFound,
			fmt.Sprintf("no butler named %q", name), name)
	}
	return b, nil
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("Dashboard API listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
