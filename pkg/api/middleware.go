package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/butlerhq/butlerd/pkg/version"
)

// securityHeaders hardens dashboard responses. The dashboard serves JSON only,
// so framing is denied and responses are never cached: pending-action state is
// stale the moment a decision lands.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("Server", version.Full())
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Cache-Control", "no-store")
			return next(c)
		}
	}
}
