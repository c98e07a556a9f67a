// Package handler contains the HTTP handlers for the dashboard API.
package handler

import (
	"log/slog"
	"net/http"

	"squareone/internal/delivery/http/response"
	"squareone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginInput carries the operator credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for auth and profile handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the operator login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	admin, token, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"admin": admin,
		"token": token,
	}, "Login successful")
}

// Profile returns the cached operator identity.
func (h *AuthHandler) Profile(c echo.Context) error {
	admin, err := h.uc.Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "")
}

// UpdateProfile handles the profile edit request.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var input usecase.ProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "Profile updated successfully")
}

// ListUsers serves the end-user collection.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	refresh := c.QueryParam("refresh") == "true"

	users, err := h.uc.ListUsers(c.Request().Context(), refresh)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}
