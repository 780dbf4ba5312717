package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			ctx := WithContext(c.Request().Context(), String("request_id", requestID))
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				// let echo write the error so the logged status is the real one
				c.Error(err)
			}

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				userIDStr = userID
			}

			logger.LogHTTPRequest(c.Request().Method, path, c.RealIP(), userIDStr, requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
