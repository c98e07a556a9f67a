package handler

import (
	"log/slog"
	"net/http"

	"squareone/internal/delivery/http/response"
	"squareone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupportHandler holds dependencies for support ticket handlers.
type SupportHandler struct {
	uc     usecase.SupportUsecase
	logger *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMessages serves support tickets, optionally filtered by status.
func (h *SupportHandler) ListMessages(c echo.Context) error {
	filter := usecase.SupportFilter(c.QueryParam("status"))
	switch filter {
	case usecase.SupportFilterInProgress, usecase.SupportFilterResolved:
	default:
		filter = usecase.SupportFilterAll
	}

	messages, err := h.uc.ListMessages(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// Resolve closes one support ticket.
func (h *SupportHandler) Resolve(c echo.Context) error {
	if err := h.uc.Resolve(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ticket resolved successfully")
}
