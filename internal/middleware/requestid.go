package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-site/api/internal/logging"
)

// RequestID tags every request with an identifier, reusing X-Request-ID when
// the caller sent one. The id is echoed in the response header and bound to a
// request-scoped logger that handlers and repositories pick up from the
// request context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(ContextKeyRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			scoped := logger.With("request_id", rid)
			c.SetRequest(req.WithContext(logging.WithLogger(req.Context(), scoped)))

			return next(c)
		}
	}
}

// RequestIDFromContext returns the identifier assigned by RequestID, or "".
func RequestIDFromContext(c echo.Context) string {
	rid, _ := c.Get(ContextKeyRequestID).(string)
	return rid
}
