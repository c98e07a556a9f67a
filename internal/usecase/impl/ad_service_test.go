package impl

import (
	"context"
	"testing"
	"time"

	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdService(t *testing.T, gateway *fakeGateway) (usecase.AdUsecase, testStores) {
	t.Helper()

	stores := newTestStores(t)

	return NewAdService(gateway, stores.ads, stores.brands, stores.auth, testLogger()), stores
}

func TestAdService_GetAd_ResolvesBrandAndDeal(t *testing.T) {
	service, stores := createTestAdService(t, &fakeGateway{})
	stores.brands.ReplaceAll([]entity.Brand{
		{ID: "b1", Name: "Kopi Club", Deals: []entity.Deal{{ID: "d1", Title: "Free Coffee"}}},
	})
	stores.ads.ReplaceAll([]entity.Ad{{ID: "ad1", BrandID: "b1", DealID: "d1"}})

	resolved, err := service.GetAd(context.Background(), "ad1")

	require.NoError(t, err)
	require.NotNil(t, resolved.Brand)
	assert.Equal(t, "Kopi Club", resolved.Brand.Name)
	require.NotNil(t, resolved.Deal)
	assert.Equal(t, "Free Coffee", resolved.Deal.Title)
}

func TestAdService_GetAd_ExpiredPlacementHasNegativeDaysLeft(t *testing.T) {
	service, stores := createTestAdService(t, &fakeGateway{})
	stores.ads.ReplaceAll([]entity.Ad{
		{ID: "ad1", BrandID: "b1", DealID: "d1", EndAt: time.Now().Add(-72 * time.Hour)},
	})

	resolved, err := service.GetAd(context.Background(), "ad1")

	require.NoError(t, err)
	assert.Negative(t, resolved.DaysLeft)
}

func TestAdService_GetAd_DanglingReferencesStayNil(t *testing.T) {
	service, stores := createTestAdService(t, &fakeGateway{})
	stores.brands.ReplaceAll([]entity.Brand{{ID: "b1", Name: "Kopi Club"}})
	stores.ads.ReplaceAll([]entity.Ad{
		{ID: "ad1", BrandID: "gone", DealID: "d1"},
		{ID: "ad2", BrandID: "b1", DealID: "gone"},
	})

	resolved, err := service.GetAd(context.Background(), "ad1")
	require.NoError(t, err)
	assert.Nil(t, resolved.Brand)
	assert.Nil(t, resolved.Deal)

	resolved, err = service.GetAd(context.Background(), "ad2")
	require.NoError(t, err)
	require.NotNil(t, resolved.Brand)
	assert.Nil(t, resolved.Deal)
}

func TestAdService_GetAd_NotFound(t *testing.T) {
	gateway := &fakeGateway{
		fetchAds: func(context.Context) ([]entity.Ad, error) { return nil, nil },
	}
	service, _ := createTestAdService(t, gateway)

	_, err := service.GetAd(context.Background(), "ghost")

	assert.ErrorIs(t, err, domainerrors.ErrAdNotFound)
}

func TestAdService_CreateAd_ValidatesReferences(t *testing.T) {
	service, stores := createTestAdService(t, &fakeGateway{})
	stores.brands.ReplaceAll([]entity.Brand{
		{ID: "b1", Name: "Kopi Club", Deals: []entity.Deal{{ID: "d1", Title: "Free Coffee"}}},
	})

	input := usecase.AdInput{
		Banner:  "banner.png",
		BrandID: "ghost",
		DealID:  "d1",
		StartAt: time.Now(),
		EndAt:   time.Now().Add(24 * time.Hour),
	}
	_, err := service.CreateAd(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)

	input.BrandID = "b1"
	input.DealID = "ghost"
	_, err = service.CreateAd(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrDealNotFound)
}

func TestAdService_CreateAd_StampsOperatorAndMirrors(t *testing.T) {
	gateway := &fakeGateway{
		createAd: func(_ context.Context, ad entity.Ad) (entity.Ad, error) {
			ad.ID = "ad-7"

			return ad, nil
		},
	}
	service, stores := createTestAdService(t, gateway)
	stores.brands.ReplaceAll([]entity.Brand{
		{ID: "b1", Name: "Kopi Club", Deals: []entity.Deal{{ID: "d1", Title: "Free Coffee"}}},
	})
	stores.auth.SetAdmin(entity.Admin{ID: "a1", Email: "admin@example.com"})

	created, err := service.CreateAd(context.Background(), usecase.AdInput{
		Banner:  "banner.png",
		BrandID: "b1",
		DealID:  "d1",
		StartAt: time.Now(),
		EndAt:   time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", created.CreatedBy)

	mirrored, ok := stores.ads.GetByID("ad-7")
	require.True(t, ok)
	assert.Equal(t, "banner.png", mirrored.Banner)
}

func TestAdService_DeleteAd_RemovesFromMirror(t *testing.T) {
	gateway := &fakeGateway{
		deleteAd: func(context.Context, string) error { return nil },
	}
	service, stores := createTestAdService(t, gateway)
	stores.ads.ReplaceAll([]entity.Ad{{ID: "ad1"}, {ID: "ad2"}})

	require.NoError(t, service.DeleteAd(context.Background(), "ad1"))

	assert.Len(t, stores.ads.All(), 1)
}
