package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"charity-connect.com/charity-connect/internal/auth"
)

const principalKey = "principal"

// Auth authenticates the bearer token and resolves the caller's roles once,
// leaving a Principal in the request context for handlers to read.
func Auth(tokens *auth.TokenIssuer, roles auth.RoleDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			userID, err := tokens.Parse(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, err := roles.Resolve(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to resolve caller roles")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal stored by Auth; zero value when the
// route is unauthenticated.
func PrincipalFrom(c echo.Context) auth.Principal {
	principal, _ := c.Get(principalKey).(auth.Principal)
	return principal
}
