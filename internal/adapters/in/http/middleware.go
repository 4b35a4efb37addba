package http

import (
	"net/http"
	"strings"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/services"
	"suqia/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where the authenticated principal lives in the
// echo context.
const principalContextKey = "principal"

// JWTAuth validates the bearer token and stores the caller's principal in
// the request context.
func JWTAuth(tokens auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			principal, err := tokens.Parse(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not in the allowed set.
func RequireRole(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(principalContextKey).(services.Principal)
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "not authenticated",
				})
			}

			for _, role := range roles {
				if principal.Role() == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "insufficient role",
			})
		}
	}
}

// currentPrincipal returns the principal stored by JWTAuth.
func currentPrincipal(c echo.Context) (services.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(services.Principal)
	return principal, ok
}
