package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpmiddleware "squareone/internal/delivery/http/middleware"
	"squareone/internal/delivery/http/validator"
	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog satisfies usecase.CatalogUsecase with canned responses.
type stubCatalog struct {
	usecase.CatalogUsecase

	listBrands  func(ctx context.Context, refresh bool) ([]entity.Brand, error)
	getBrand    func(ctx context.Context, name string) (entity.Brand, error)
	createBrand func(ctx context.Context, input usecase.BrandInput) (entity.Brand, error)
}

func (s *stubCatalog) ListBrands(ctx context.Context, refresh bool) ([]entity.Brand, error) {
	return s.listBrands(ctx, refresh)
}

func (s *stubCatalog) GetBrand(ctx context.Context, name string) (entity.Brand, error) {
	return s.getBrand(ctx, name)
}

func (s *stubCatalog) CreateBrand(ctx context.Context, input usecase.BrandInput) (entity.Brand, error) {
	return s.createBrand(ctx, input)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func testBrandHandler(uc usecase.CatalogUsecase) *BrandHandler {
	return NewBrandHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBrandHandler_ListBrands_RefreshQuery(t *testing.T) {
	var sawRefresh bool
	h := testBrandHandler(&stubCatalog{
		listBrands: func(_ context.Context, refresh bool) ([]entity.Brand, error) {
			sawRefresh = refresh

			return []entity.Brand{{ID: "b1", Name: "Kopi Club"}}, nil
		},
	})

	e := newTestEcho()
	e.GET("/brands", h.ListBrands)

	req := httptest.NewRequest(http.MethodGet, "/brands?refresh=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawRefresh)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestBrandHandler_GetBrand_NotFoundEnvelope(t *testing.T) {
	h := testBrandHandler(&stubCatalog{
		getBrand: func(context.Context, string) (entity.Brand, error) {
			return entity.Brand{}, domainerrors.ErrBrandNotFound
		},
	})

	e := newTestEcho()
	e.GET("/brands/:brand", h.GetBrand)

	req := httptest.NewRequest(http.MethodGet, "/brands/Nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "BRAND_NOT_FOUND", errInfo["code"])
}

func TestBrandHandler_CreateBrand_ValidatesInput(t *testing.T) {
	h := testBrandHandler(&stubCatalog{
		createBrand: func(_ context.Context, input usecase.BrandInput) (entity.Brand, error) {
			return entity.Brand{ID: "b1", Name: input.Name}, nil
		},
	})

	e := newTestEcho()
	e.POST("/brands", h.CreateBrand)

	// Missing the required category field.
	req := httptest.NewRequest(http.MethodPost, "/brands", strings.NewReader(`{"name": "Kopi Club"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/brands", strings.NewReader(`{"name": "Kopi Club", "category": "cafe"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
