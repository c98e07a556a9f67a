package usecase

import (
	"context"

	"squareone/internal/domain/entity"
)

// BrandEngagement is one row of the top-brands table.
type BrandEngagement struct {
	Brand       entity.Brand `json:"brand"`
	Redemptions int          `json:"redemptions"`
}

// DealEngagement is one row of the top-deals table, carrying the owning
// brand for display.
type DealEngagement struct {
	BrandID     string      `json:"brand_id"`
	BrandName   string      `json:"brand_name"`
	Deal        entity.Deal `json:"deal"`
	Redemptions int         `json:"redemptions"`
}

// MonthlyCount is one bucket of the redemption time series, e.g.
// {Name: "Jan 2025", Total: 42}.
type MonthlyCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// Overview is the dashboard landing payload.
type Overview struct {
	TotalBrands      int              `json:"total_brands"`
	TotalDeals       int              `json:"total_deals"`
	TotalEvents      int              `json:"total_events"`
	TotalUsers       int              `json:"total_users"`
	TotalRedemptions int              `json:"total_redemptions"`
	TopBrands        []BrandEngagement `json:"top_brands"`
	TopDeals         []DealEngagement  `json:"top_deals"`
	Monthly          []MonthlyCount    `json:"monthly"`
}

// AnalyticsUsecase computes derived views over the cached collections. All
// derivations are pure and re-run on every read.
type AnalyticsUsecase interface {
	Overview(ctx context.Context) (*Overview, error)
}
