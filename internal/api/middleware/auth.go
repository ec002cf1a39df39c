package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancedash/profit-engine/internal/core/ports"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-access-token"

// ContextUserID is the echo context key holding the verified user id.
const ContextUserID = "user_id"

// Auth verifies the session token and injects the resolved user id into
// context. Handlers behind it never see or trust a client-supplied
// identity. Missing and invalid tokens both answer 401; the distinction
// survives only in logs.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				log.Debug().Str("path", c.Path()).Msg("request without token")
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is missing!"})
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is invalid!"})
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
