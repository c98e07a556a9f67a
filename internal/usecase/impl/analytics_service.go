package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	"squareone/internal/usecase"

	"go.uber.org/fx"
)

// How many rows the landing tables show.
const (
	topBrandLimit = 5
	topDealLimit  = 5
)

// analyticsService implements the AnalyticsUsecase interface. All numbers
// are derived from the mirrors on every read; nothing is precomputed.
type analyticsService struct {
	fx.In

	catalog usecase.CatalogUsecase
	events  usecase.EventUsecase
	auth    usecase.AuthUsecase
	logger  *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	catalog usecase.CatalogUsecase,
	events usecase.EventUsecase,
	auth usecase.AuthUsecase,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		catalog: catalog,
		events:  events,
		auth:    auth,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview assembles the landing payload. A collection that cannot be
// served, cached or fetched, contributes zeros instead of failing the page.
func (srv *analyticsService) Overview(ctx context.Context) (*usecase.Overview, error) {
	brands, err := srv.catalog.ListBrands(ctx, false)
	if err != nil {
		srv.log(ctx).Warn("Overview serving without brand data", "error", err)
	}

	events, err := srv.events.ListEvents(ctx, false)
	if err != nil {
		srv.log(ctx).Warn("Overview serving without event data", "error", err)
	}

	users, err := srv.auth.ListUsers(ctx, false)
	if err != nil {
		srv.log(ctx).Warn("Overview serving without user data", "error", err)
	}

	totalDeals := 0
	totalRedemptions := 0
	for _, brand := range brands {
		totalDeals += len(brand.Deals)
		totalRedemptions += brand.TotalRedemptions()
	}

	return &usecase.Overview{
		TotalBrands:      len(brands),
		TotalDeals:       totalDeals,
		TotalEvents:      len(events),
		TotalUsers:       len(users),
		TotalRedemptions: totalRedemptions,
		TopBrands:        RankBrandsByEngagement(brands, topBrandLimit),
		TopDeals:         RankDealsByRedemption(brands, topDealLimit),
		Monthly:          MonthlyRedemptionHistogram(brands),
	}, nil
}

// RankBrandsByEngagement orders brands by total redemptions, highest first.
// Ties keep input order. A non-positive limit means no truncation.
func RankBrandsByEngagement(brands []entity.Brand, limit int) []usecase.BrandEngagement {
	ranked := make([]usecase.BrandEngagement, 0, len(brands))
	for _, brand := range brands {
		ranked = append(ranked, usecase.BrandEngagement{
			Brand:       brand,
			Redemptions: brand.TotalRedemptions(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Redemptions > ranked[j].Redemptions
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// RankDealsByRedemption flattens every brand's deals and orders them by
// redemption count, highest first. Ties keep input order, brands in the
// order given and deals in the order listed within each brand.
func RankDealsByRedemption(brands []entity.Brand, limit int) []usecase.DealEngagement {
	ranked := make([]usecase.DealEngagement, 0)
	for _, brand := range brands {
		for _, deal := range brand.Deals {
			ranked = append(ranked, usecase.DealEngagement{
				BrandID:     brand.ID,
				BrandName:   brand.Name,
				Deal:        deal,
				Redemptions: deal.RedemptionCount(),
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Redemptions > ranked[j].Redemptions
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// MonthlyRedemptionHistogram buckets every redemption across all brands by
// calendar month and returns the buckets in chronological order. Months
// without redemptions do not appear. Redemptions with no timestamp are
// skipped rather than bucketed into the zero month.
func MonthlyRedemptionHistogram(brands []entity.Brand) []usecase.MonthlyCount {
	counts := make(map[time.Time]int)
	for _, brand := range brands {
		for _, deal := range brand.Deals {
			for _, redemption := range deal.Redemptions {
				if redemption.CreatedAt.IsZero() {
					continue
				}
				month := time.Date(
					redemption.CreatedAt.Year(), redemption.CreatedAt.Month(), 1,
					0, 0, 0, 0, time.UTC,
				)
				counts[month]++
			}
		}
	}

	months := make([]time.Time, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	histogram := make([]usecase.MonthlyCount, 0, len(months))
	for _, month := range months {
		histogram = append(histogram, usecase.MonthlyCount{
			Name:  month.Format("Jan 2006"),
			Total: counts[month],
		})
	}

	return histogram
}
