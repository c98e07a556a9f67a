package usecase

import (
	"context"
	"time"

	"squareone/internal/domain/entity"
)

// AdInput carries the editable fields of an ad placement.
type AdInput struct {
	Banner  string    `json:"banner" validate:"required"`
	BrandID string    `json:"brand_id" validate:"required"`
	DealID  string    `json:"deal_id" validate:"required"`
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
}

// AdUsecase manages the ad mirror. GetAd resolves the referenced brand and
// deal from the brand mirror; dangling references resolve to nil, not an
// error, matching the consuming view's nested-find behavior.
type AdUsecase interface {
	RefreshAds(ctx context.Context) ([]entity.Ad, error)
	ListAds(ctx context.Context, refresh bool) ([]entity.Ad, error)
	GetAd(ctx context.Context, id string) (entity.ResolvedAd, error)
	CreateAd(ctx context.Context, input AdInput) (entity.Ad, error)
	DeleteAd(ctx context.Context, id string) error
}
