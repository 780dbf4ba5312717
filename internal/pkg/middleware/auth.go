package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/auth"
	"github.com/piresc/intercity/internal/pkg/logger"
)

// AuthContextMiddleware attaches the verified identity, if any, to the
// request context. It never rejects a request.
func AuthContextMiddleware(builder *auth.ContextBuilder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := builder.Build(req.Context(), req.Header.Get(echo.HeaderAuthorization))

			if id, ok := auth.FromContext(ctx); ok {
				c.Set("user_id", id.SubjectID)
				ctx = logger.WithContext(ctx, logger.String("user_id", id.SubjectID))
			}

			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
