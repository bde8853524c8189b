package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/core/domain"
)

// RequireCaller rejects anonymous callers before the handler runs.
func RequireCaller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Caller(c).IsAnonymous() {
				return domain.ErrAnonymousCaller
			}
			return next(c)
		}
	}
}
