package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/v1/health. Only butlerd's own components
// (per-butler database, executor pool) are checked; module transports are
// excluded so an external outage never reads as a butlerd failure.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	overall := healthStatusHealthy
	butlers := make(map[string]map[string]HealthCheck, len(s.backends))

	for name, b := range s.backends {
		checks := make(map[string]HealthCheck)

		if b.Ping != nil {
			if err := b.Ping(reqCtx); err != nil {
				overall = healthStatusUnhealthy
				checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
			} else {
				checks["database"] = HealthCheck{Status: healthStatusHealthy}
			}
		}

		if b.Pool != nil {
			pool := b.Pool.Health(reqCtx)
			if pool != nil && !pool.IsHealthy {
				if overall == healthStatusHealthy {
					overall = healthStatusDegraded
				}
				msg := pool.DBError
				if msg == "" {
					msg = healthStatusUnhealthy
				}
				checks["executor_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
			} else {
				checks["executor_pool"] = HealthCheck{Status: healthStatusHealthy}
			}
		}

		butlers[name] = checks
	}

	httpStatus := http.StatusOK
	if overall == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, &HealthResponse{Status: overall, Version: version.Full(), Butlers: butlers})
}
