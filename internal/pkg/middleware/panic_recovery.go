package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and answers 500
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", c.Request().UserAgent()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}

	body := map[string]interface{}{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred while processing your request",
	}
	if requestID != "" {
		body["request_id"] = requestID
	}
	if err := c.JSON(http.StatusInternalServerError, body); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
