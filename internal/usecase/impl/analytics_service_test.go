package impl

import (
	"context"
	"testing"
	"time"

	"squareone/internal/domain/entity"
	"squareone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redemptionsAt(times ...time.Time) []entity.Redemption {
	out := make([]entity.Redemption, 0, len(times))
	for i, at := range times {
		out = append(out, entity.Redemption{UserID: string(rune('a' + i)), CreatedAt: at})
	}

	return out
}

func redemptionCount(n int) []entity.Redemption {
	out := make([]entity.Redemption, n)
	for i := range out {
		out[i] = entity.Redemption{UserID: "user", CreatedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}
	}

	return out
}

func TestRankBrandsByEngagement_OrdersByTotalRedemptions(t *testing.T) {
	brands := []entity.Brand{
		{ID: "b1", Name: "Quiet", Deals: []entity.Deal{{ID: "d1", Redemptions: redemptionCount(1)}}},
		{ID: "b2", Name: "Busy", Deals: []entity.Deal{
			{ID: "d2", Redemptions: redemptionCount(3)},
			{ID: "d3", Redemptions: redemptionCount(2)},
		}},
		{ID: "b3", Name: "Idle"},
	}

	ranked := RankBrandsByEngagement(brands, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "b2", ranked[0].Brand.ID)
	assert.Equal(t, 5, ranked[0].Redemptions)
	assert.Equal(t, "b1", ranked[1].Brand.ID)
	assert.Equal(t, "b3", ranked[2].Brand.ID)
	assert.Equal(t, 0, ranked[2].Redemptions)
}

func TestRankBrandsByEngagement_TiesKeepInputOrder(t *testing.T) {
	brands := []entity.Brand{
		{ID: "b1", Deals: []entity.Deal{{ID: "d1", Redemptions: redemptionCount(2)}}},
		{ID: "b2", Deals: []entity.Deal{{ID: "d2", Redemptions: redemptionCount(2)}}},
		{ID: "b3", Deals: []entity.Deal{{ID: "d3", Redemptions: redemptionCount(2)}}},
	}

	ranked := RankBrandsByEngagement(brands, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "b1", ranked[0].Brand.ID)
	assert.Equal(t, "b2", ranked[1].Brand.ID)
	assert.Equal(t, "b3", ranked[2].Brand.ID)
}

func TestRankBrandsByEngagement_Truncates(t *testing.T) {
	brands := []entity.Brand{
		{ID: "b1"}, {ID: "b2"}, {ID: "b3"},
	}

	ranked := RankBrandsByEngagement(brands, 2)

	assert.Len(t, ranked, 2)
}

func TestRankDealsByRedemption_FlattensAcrossBrands(t *testing.T) {
	brands := []entity.Brand{
		{ID: "b1", Name: "First", Deals: []entity.Deal{
			{ID: "d1", Title: "Small", Redemptions: redemptionCount(1)},
		}},
		{ID: "b2", Name: "Second", Deals: []entity.Deal{
			{ID: "d2", Title: "Big", Redemptions: redemptionCount(4)},
			{ID: "d3", Title: "None"},
		}},
	}

	ranked := RankDealsByRedemption(brands, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "d2", ranked[0].Deal.ID)
	assert.Equal(t, "Second", ranked[0].BrandName)
	assert.Equal(t, 4, ranked[0].Redemptions)
	assert.Equal(t, "d1", ranked[1].Deal.ID)
	assert.Equal(t, "d3", ranked[2].Deal.ID)
}

func TestRankDealsByRedemption_EmptyBrands(t *testing.T) {
	assert.Empty(t, RankDealsByRedemption(nil, 5))
	assert.Empty(t, RankDealsByRedemption([]entity.Brand{{ID: "b1"}}, 5))
}

func TestMonthlyRedemptionHistogram_ChronologicalAcrossYearBoundary(t *testing.T) {
	brands := []entity.Brand{
		{ID: "b1", Deals: []entity.Deal{
			{ID: "d1", Redemptions: redemptionsAt(
				time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
				time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 1, 28, 23, 0, 0, 0, time.UTC),
			)},
		}},
		{ID: "b2", Deals: []entity.Deal{
			{ID: "d2", Redemptions: redemptionsAt(
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC),
			)},
		}},
	}

	histogram := MonthlyRedemptionHistogram(brands)

	require.Len(t, histogram, 3)
	assert.Equal(t, usecase.MonthlyCount{Name: "Dec 2024", Total: 2}, histogram[0])
	assert.Equal(t, usecase.MonthlyCount{Name: "Jan 2025", Total: 2}, histogram[1])
	assert.Equal(t, usecase.MonthlyCount{Name: "Mar 2025", Total: 1}, histogram[2])
}

func TestMonthlyRedemptionHistogram_SkipsZeroTimestamps(t *testing.T) {
	brands := []entity.Brand{
		{ID: "b1", Deals: []entity.Deal{
			{ID: "d1", Redemptions: []entity.Redemption{
				{UserID: "u1"},
				{UserID: "u2", CreatedAt: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
			}},
		}},
	}

	histogram := MonthlyRedemptionHistogram(brands)

	require.Len(t, histogram, 1)
	assert.Equal(t, "Jun 2025", histogram[0].Name)
	assert.Equal(t, 1, histogram[0].Total)
}

func TestMonthlyRedemptionHistogram_Empty(t *testing.T) {
	assert.Empty(t, MonthlyRedemptionHistogram(nil))
}

func TestAnalyticsService_Overview_Totals(t *testing.T) {
	stores := newTestStores(t)
	logger := testLogger()

	stores.brands.ReplaceAll([]entity.Brand{
		{ID: "b1", Name: "First", Deals: []entity.Deal{
			{ID: "d1", Title: "Top", Redemptions: redemptionCount(3)},
			{ID: "d2", Title: "Rest", Redemptions: redemptionCount(1)},
		}},
		{ID: "b2", Name: "Second", Deals: []entity.Deal{{ID: "d3", Title: "Other"}}},
	})
	stores.events.ReplaceAll([]entity.Event{{ID: "e1", Title: "Bazaar"}})
	stores.auth.ReplaceUsers([]entity.User{{ID: "u1"}, {ID: "u2"}})

	gateway := &fakeGateway{}
	service := NewAnalyticsService(
		NewCatalogService(gateway, stores.brands, logger),
		NewEventService(gateway, stores.events, logger),
		NewAuthService(gateway, nil, stores.auth, logger),
		logger,
	)

	overview, err := service.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalBrands)
	assert.Equal(t, 3, overview.TotalDeals)
	assert.Equal(t, 1, overview.TotalEvents)
	assert.Equal(t, 2, overview.TotalUsers)
	assert.Equal(t, 4, overview.TotalRedemptions)
	require.NotEmpty(t, overview.TopBrands)
	assert.Equal(t, "b1", overview.TopBrands[0].Brand.ID)
	require.NotEmpty(t, overview.TopDeals)
	assert.Equal(t, "d1", overview.TopDeals[0].Deal.ID)
	require.Len(t, overview.Monthly, 1)
	assert.Equal(t, "Mar 2025", overview.Monthly[0].Name)
}

func TestAnalyticsService_Overview_ColdMirrorsServeZeros(t *testing.T) {
	stores := newTestStores(t)
	logger := testLogger()

	gateway := &fakeGateway{
		fetchBrands: func(context.Context) ([]entity.Brand, error) { return nil, assert.AnError },
		fetchEvents: func(context.Context) ([]entity.Event, error) { return nil, assert.AnError },
		fetchUsers:  func(context.Context) ([]entity.User, error) { return nil, assert.AnError },
	}
	service := NewAnalyticsService(
		NewCatalogService(gateway, stores.brands, logger),
		NewEventService(gateway, stores.events, logger),
		NewAuthService(gateway, nil, stores.auth, logger),
		logger,
	)

	overview, err := service.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, overview.TotalBrands)
	assert.Equal(t, 0, overview.TotalRedemptions)
	assert.Empty(t, overview.TopBrands)
	assert.Empty(t, overview.Monthly)
}
