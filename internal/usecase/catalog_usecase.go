// Package usecase defines the application-facing interfaces of the dashboard.
package usecase

import (
	"context"
	"time"

	"squareone/internal/domain/entity"
)

// BrandInput carries the editable fields of a brand.
type BrandInput struct {
	Name         string                `json:"name" validate:"required"`
	Category     string                `json:"category" validate:"required"`
	LogoImage    string                `json:"logo_image"`
	Banner       string                `json:"banner"`
	WhatsAppNo   string                `json:"whatsapp_no"`
	Description  string                `json:"description"`
	WorkingHours []entity.WorkingHours `json:"working_hours"`
}

// DealInput carries the editable fields of a deal.
type DealInput struct {
	Type        entity.DealType `json:"type" validate:"omitempty,oneof=deal discount"`
	Title       string          `json:"title" validate:"required"`
	Tagline     string          `json:"tagline"`
	Description string          `json:"description"`
	Picture     string          `json:"picture"`
	Banner      string          `json:"banner"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
}

// CatalogUsecase manages the brand mirror and the deals nested inside it.
// Every write is confirmed by the platform API before the mirror changes.
type CatalogUsecase interface {
	// RefreshBrands re-fetches the brand collection and replaces the mirror
	// wholesale. A failed fetch leaves the mirror untouched.
	RefreshBrands(ctx context.Context) ([]entity.Brand, error)

	// ListBrands serves from the mirror, fetching first when it is empty or
	// when refresh is forced.
	ListBrands(ctx context.Context, refresh bool) ([]entity.Brand, error)

	// GetBrand resolves a brand by its routing name (first match wins).
	GetBrand(ctx context.Context, name string) (entity.Brand, error)

	CreateBrand(ctx context.Context, input BrandInput) (entity.Brand, error)
	UpdateBrand(ctx context.Context, id string, input BrandInput) (entity.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	// GetDeal resolves a deal by brand routing name plus exact title.
	GetDeal(ctx context.Context, brandName, dealTitle string) (entity.Deal, error)

	CreateDeal(ctx context.Context, brandID string, input DealInput) (entity.Deal, error)
	UpdateDeal(ctx context.Context, brandID, dealID string, input DealInput) (entity.Deal, error)
	DeleteDeal(ctx context.Context, brandID, dealID string) error
}
