package handler

import (
	"log/slog"
	"net/http"

	"squareone/internal/delivery/http/response"
	"squareone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdHandler holds dependencies for ad placement handlers.
type AdHandler struct {
	uc     usecase.AdUsecase
	logger *slog.Logger
}

// NewAdHandler is the constructor for AdHandler, injected by Fx.
func NewAdHandler(uc usecase.AdUsecase, logger *slog.Logger) *AdHandler {
	return &AdHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAds serves the ad collection.
func (h *AdHandler) ListAds(c echo.Context) error {
	refresh := c.QueryParam("refresh") == "true"

	ads, err := h.uc.ListAds(c.Request().Context(), refresh)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// GetAd serves one ad with its referenced brand and deal resolved.
func (h *AdHandler) GetAd(c echo.Context) error {
	resolved, err := h.uc.GetAd(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resolved, "")
}

// CreateAd handles the ad creation request.
func (h *AdHandler) CreateAd(c echo.Context) error {
	var input usecase.AdInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ad input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ad, err := h.uc.CreateAd(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ad, "Ad created successfully")
}

// DeleteAd handles the ad deletion request.
func (h *AdHandler) DeleteAd(c echo.Context) error {
	if err := h.uc.DeleteAd(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ad deleted successfully")
}
