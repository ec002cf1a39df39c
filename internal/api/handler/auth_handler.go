package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedash/profit-engine/internal/api/metrics"
	"github.com/freelancedash/profit-engine/internal/core/domain"
	"github.com/freelancedash/profit-engine/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// messageResponse is the envelope the mobile client expects from the auth
// routes.
type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, messageResponse{Message: "Username already exists"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Username and password are required"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully"})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Could not verify"})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Login failed"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
