package middleware

import (
	"causalLab/business/psm"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID reuses an incoming X-Request-ID or mints one, echoes it on the
// response and puts it on the request context for business logging.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, id)
			req := c.Request()
			c.SetRequest(req.WithContext(psm.WithTraceID(req.Context(), id)))

			return next(c)
		}
	}
}
