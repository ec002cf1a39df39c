package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedash/profit-engine/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its
// presence proves the gate ran; a protected handler reached without it is
// a wiring error and answers 401 rather than proceeding unscoped.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
