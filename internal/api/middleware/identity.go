package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/identity"
)

const callerKey = "caller"

// Identity resolves the caller from an optional bearer token. Requests
// without an Authorization header proceed as the anonymous identity; a
// malformed or invalid token is rejected.
func Identity(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				c.Set(callerKey, domain.Anonymous)
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := identity.Verify(jwtSecret, strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(callerKey, id)
			return next(c)
		}
	}
}

// Caller returns the identity set by Identity, or anonymous.
func Caller(c echo.Context) domain.CallerIdentity {
	id, _ := c.Get(callerKey).(domain.CallerIdentity)
	return id
}

// SetCaller stores id on the context the way Identity does.
func SetCaller(c echo.Context, id domain.CallerIdentity) {
	c.Set(callerKey, id)
}
