package middleware

import (
	"strings"

	"medtrack/config"
	"medtrack/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const keyAccessToken = "accessToken"

// AuthMiddleware forwards the client's bearer token to the backend
type AuthMiddleware struct {
	serviceCredentials bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		serviceCredentials: cfg.Backend != nil && cfg.Backend.AccessToken != "",
	}
}

// Authenticate extracts the bearer token. Requests without one are only
// accepted when service credentials are configured.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			if !m.serviceCredentials {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
			}

			return next(c)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		c.Set(keyAccessToken, strings.TrimSpace(token))

		return next(c)
	}
}

// GetAccessToken returns the bearer token set by Authenticate, if any
func GetAccessToken(c echo.Context) string {
	token, _ := c.Get(keyAccessToken).(string)

	return token
}
