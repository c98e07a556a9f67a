package handler

import (
	"log/slog"
	"net/http"

	"squareone/internal/delivery/http/response"
	"squareone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BrandHandler holds dependencies for brand and deal handlers. Reads address
// brands by name (the routing key) and deals by title; writes address both
// by id.
type BrandHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBrands serves the brand collection.
func (h *BrandHandler) ListBrands(c echo.Context) error {
	refresh := c.QueryParam("refresh") == "true"

	brands, err := h.uc.ListBrands(c.Request().Context(), refresh)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands, "")
}

// GetBrand resolves one brand by name.
func (h *BrandHandler) GetBrand(c echo.Context) error {
	brand, err := h.uc.GetBrand(c.Request().Context(), c.Param("brand"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brand, "")
}

// CreateBrand handles the brand creation request.
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var input usecase.BrandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.CreateBrand(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, brand, "Brand created successfully")
}

// UpdateBrand handles the brand edit request.
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	var input usecase.BrandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.UpdateBrand(c.Request().Context(), c.Param("brand"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brand, "Brand updated successfully")
}

// DeleteBrand handles the brand deletion request.
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	if err := h.uc.DeleteBrand(c.Request().Context(), c.Param("brand")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Brand deleted successfully")
}

// GetDeal resolves one deal by brand name plus deal title.
func (h *BrandHandler) GetDeal(c echo.Context) error {
	deal, err := h.uc.GetDeal(c.Request().Context(), c.Param("brand"), c.Param("deal"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "")
}

// CreateDeal handles the deal creation request under a brand.
func (h *BrandHandler) CreateDeal(c echo.Context) error {
	var input usecase.DealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	deal, err := h.uc.CreateDeal(c.Request().Context(), c.Param("brand"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal, "Deal created successfully")
}

// UpdateDeal handles the deal edit request.
func (h *BrandHandler) UpdateDeal(c echo.Context) error {
	var input usecase.DealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	deal, err := h.uc.UpdateDeal(c.Request().Context(), c.Param("brand"), c.Param("deal"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal updated successfully")
}

// DeleteDeal handles the deal deletion request.
func (h *BrandHandler) DeleteDeal(c echo.Context) error {
	if err := h.uc.DeleteDeal(c.Request().Context(), c.Param("brand"), c.Param("deal")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal deleted successfully")
}
