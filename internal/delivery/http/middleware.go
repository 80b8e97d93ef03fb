package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"blog-service/internal/application/common"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain"
)

const userContextKey = "authenticated-user"

// RequireAuth extracts the bearer token from the Authorization header and
// resolves it to a user. Missing header, malformed scheme, and every
// verification failure produce the same 401.
func RequireAuth(auth interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return mapError(domain.ErrUnauthenticated)
			}

			user, err := auth.VerifyIdentity(c.Request().Context(), tokenString)
			if err != nil {
				return mapError(domain.ErrUnauthenticated)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

// currentUser returns the identity set by RequireAuth. Only valid on
// routes behind that middleware.
func currentUser(c echo.Context) *common.UserResult {
	return c.Get(userContextKey).(*common.UserResult)
}
