package middleware

import (
	"github.com/labstack/echo/v4"
)

// InternalContext extracts the X-Internal-* headers injected by the edge
// gateway and propagates them into the Go request context using the typed
// keys above.
//
// Must be registered AFTER the OTel tracing middleware and BEFORE domain
// handlers that call GetOrgID / GetUserID.
func InternalContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if orgID := c.Request().Header.Get("X-Internal-Org-Id"); orgID != "" {
				ctx = WithOrgID(ctx, orgID)
			}
			if userID := c.Request().Header.Get("X-Internal-User-Id"); userID != "" {
				ctx = WithUserID(ctx, userID)
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
