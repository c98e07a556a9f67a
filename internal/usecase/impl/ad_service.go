package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/repository"
	"squareone/internal/domain/service"
	"squareone/internal/usecase"
	"squareone/internal/util"

	"go.uber.org/fx"
)

// adService implements the AdUsecase interface.
type adService struct {
	fx.In

	gateway service.PlatformGateway
	ads     repository.AdStore
	brands  repository.BrandStore
	auth    repository.AuthStore
	logger  *slog.Logger
}

// NewAdService is the constructor for adService.
func NewAdService(
	gateway service.PlatformGateway,
	ads repository.AdStore,
	brands repository.BrandStore,
	auth repository.AuthStore,
	logger *slog.Logger,
) usecase.AdUsecase {
	return &adService{
		gateway: gateway,
		ads:     ads,
		brands:  brands,
		auth:    auth,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshAds replaces the ad mirror with the upstream collection.
func (srv *adService) RefreshAds(ctx context.Context) ([]entity.Ad, error) {
	srv.log(ctx).Debug("Refreshing ad mirror")

	ads, err := srv.gateway.FetchAds(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}
	srv.ads.ReplaceAll(ads)

	return ads, nil
}

func (srv *adService) ListAds(ctx context.Context, refresh bool) ([]entity.Ad, error) {
	if refresh {
		return srv.RefreshAds(ctx)
	}

	cached := srv.ads.All()
	if len(cached) == 0 {
		return srv.RefreshAds(ctx)
	}

	return cached, nil
}

// GetAd returns the ad with its referenced brand and deal resolved from the
// brand mirror. A reference that no longer resolves stays nil rather than
// failing the whole lookup.
func (srv *adService) GetAd(ctx context.Context, id string) (entity.ResolvedAd, error) {
	ad, ok := srv.ads.GetByID(id)
	if !ok {
		if len(srv.ads.All()) == 0 {
			if _, err := srv.RefreshAds(ctx); err != nil {
				return entity.ResolvedAd{}, err
			}
			ad, ok = srv.ads.GetByID(id)
		}
		if !ok {
			return entity.ResolvedAd{}, domainerrors.ErrAdNotFound
		}
	}

	resolved := entity.ResolvedAd{
		Ad:       ad,
		DaysLeft: util.DaysRemaining(ad.EndAt, time.Now()),
	}
	if brand, found := srv.brands.GetByID(ad.BrandID); found {
		resolved.Brand = &brand
		for _, deal := range brand.Deals {
			if deal.ID == ad.DealID {
				d := deal
				resolved.Deal = &d

				break
			}
		}
	}

	return resolved, nil
}

// CreateAd validates the brand/deal pair against the mirror, registers the
// placement upstream and mirrors the result.
func (srv *adService) CreateAd(ctx context.Context, input usecase.AdInput) (entity.Ad, error) {
	brand, ok := srv.brands.GetByID(input.BrandID)
	if !ok {
		return entity.Ad{}, domainerrors.ErrBrandNotFound
	}
	if _, found := findDealByID(brand, input.DealID); !found {
		return entity.Ad{}, domainerrors.ErrDealNotFound
	}

	srv.log(ctx).Info("Creating ad", "brandID", input.BrandID, "dealID", input.DealID)

	ad := entity.Ad{
		Banner:  input.Banner,
		BrandID: input.BrandID,
		DealID:  input.DealID,
		StartAt: input.StartAt,
		EndAt:   input.EndAt,
	}
	if admin, found := srv.auth.Admin(); found {
		ad.CreatedBy = admin.ID
	}

	created, err := srv.gateway.CreateAd(ctx, ad)
	if err != nil {
		return entity.Ad{}, gatewayError(err)
	}
	srv.ads.Add(created)

	return created, nil
}

func (srv *adService) DeleteAd(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting ad", "adID", id)

	if err := srv.gateway.DeleteAd(ctx, id); err != nil {
		return gatewayError(err)
	}
	srv.ads.Remove(id)

	return nil
}

func findDealByID(brand entity.Brand, dealID string) (entity.Deal, bool) {
	for _, deal := range brand.Deals {
		if deal.ID == dealID {
			return deal, true
		}
	}

	return entity.Deal{}, false
}
