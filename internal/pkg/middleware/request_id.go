package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/logger"
)

// RequestIDMiddleware adds a unique request ID to each request and to
// every log line written with the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), logger.String("request_id", requestID))))

			return next(c)
		}
	}
}
