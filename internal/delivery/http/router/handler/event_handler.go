package handler

import (
	"log/slog"
	"net/http"

	"squareone/internal/delivery/http/response"
	"squareone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListEvents serves the event collection.
func (h *EventHandler) ListEvents(c echo.Context) error {
	refresh := c.QueryParam("refresh") == "true"

	events, err := h.uc.ListEvents(c.Request().Context(), refresh)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// GetEvent serves one event by id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.uc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// CreateEvent handles the event creation request.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// UpdateEvent handles the event edit request.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// DeleteEvent handles the event deletion request.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.uc.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}
