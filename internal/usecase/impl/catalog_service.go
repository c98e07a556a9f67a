// Package impl contains the application-specific business rules implementations.
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

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	fx.In

	gateway service.PlatformGateway
	brands  repository.BrandStore
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	gateway service.PlatformGateway,
	brands repository.BrandStore,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		gateway: gateway,
		brands:  brands,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshBrands replaces the brand mirror with the upstream collection. On
// any fetch error the mirror keeps its previous contents.
func (srv *catalogService) RefreshBrands(ctx context.Context) ([]entity.Brand, error) {
	srv.log(ctx).Debug("Refreshing brand mirror")

	brands, err := srv.gateway.FetchBrands(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}
	srv.brands.ReplaceAll(brands)

	return brands, nil
}

// ListBrands serves from the mirror, fetching first when the mirror is empty
// or the caller forces a refresh.
func (srv *catalogService) ListBrands(ctx context.Context, refresh bool) ([]entity.Brand, error) {
	if refresh {
		return srv.RefreshBrands(ctx)
	}

	cached := srv.brands.All()
	if len(cached) == 0 {
		return srv.RefreshBrands(ctx)
	}

	return cached, nil
}

// GetBrand resolves a brand by name, fetching once when the mirror is cold.
func (srv *catalogService) GetBrand(ctx context.Context, name string) (entity.Brand, error) {
	brand, ok := srv.brands.FindByName(name)
	if ok {
		return brand, nil
	}

	if len(srv.brands.All()) == 0 {
		if _, err := srv.RefreshBrands(ctx); err != nil {
			return entity.Brand{}, err
		}
		if brand, ok = srv.brands.FindByName(name); ok {
			return brand, nil
		}
	}

	return entity.Brand{}, domainerrors.ErrBrandNotFound
}

// CreateBrand registers the brand upstream, then mirrors it with the id the
// platform assigned.
func (srv *catalogService) CreateBrand(ctx context.Context, input usecase.BrandInput) (entity.Brand, error) {
	srv.log(ctx).Info("Creating brand", "name", input.Name)

	brand := entity.Brand{
		Name:         input.Name,
		Category:     input.Category,
		LogoImage:    input.LogoImage,
		Banner:       input.Banner,
		WhatsAppNo:   input.WhatsAppNo,
		Description:  input.Description,
		WorkingHours: input.WorkingHours,
		CreatedAt:    time.Now(),
	}

	created, err := srv.gateway.CreateBrand(ctx, brand)
	if err != nil {
		return entity.Brand{}, gatewayError(err)
	}
	srv.brands.Add(created)

	return created, nil
}

// UpdateBrand edits the brand upstream, then mirrors the change. Deals and
// creation time are carried over from the cached record untouched.
func (srv *catalogService) UpdateBrand(ctx context.Context, id string, input usecase.BrandInput) (entity.Brand, error) {
	existing, ok := srv.brands.GetByID(id)
	if !ok {
		return entity.Brand{}, domainerrors.ErrBrandNotFound
	}

	srv.log(ctx).Info("Updating brand", "brandID", id)

	updated := existing
	updated.Name = input.Name
	updated.Category = input.Category
	updated.LogoImage = input.LogoImage
	updated.Banner = input.Banner
	updated.WhatsAppNo = input.WhatsAppNo
	updated.Description = input.Description
	updated.WorkingHours = input.WorkingHours

	if err := srv.gateway.EditBrand(ctx, updated); err != nil {
		return entity.Brand{}, gatewayError(err)
	}
	srv.brands.Update(id, updated)

	return updated, nil
}

// DeleteBrand removes the brand upstream, then from the mirror. Removing an
// id the mirror never held is not an error.
func (srv *catalogService) DeleteBrand(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting brand", "brandID", id)

	if err := srv.gateway.DeleteBrand(ctx, id); err != nil {
		return gatewayError(err)
	}
	srv.brands.Remove(id)

	return nil
}

// GetDeal resolves a deal by brand name plus exact title.
func (srv *catalogService) GetDeal(ctx context.Context, brandName, dealTitle string) (entity.Deal, error) {
	brand, err := srv.GetBrand(ctx, brandName)
	if err != nil {
		return entity.Deal{}, err
	}

	if deal, ok := FindDealByTitle(brand, dealTitle); ok {
		return deal, nil
	}

	return entity.Deal{}, domainerrors.ErrDealNotFound
}

// CreateDeal creates the deal upstream under the given brand, then mirrors
// it inside the owning brand record.
func (srv *catalogService) CreateDeal(ctx context.Context, brandID string, input usecase.DealInput) (entity.Deal, error) {
	if _, ok := srv.brands.GetByID(brandID); !ok {
		return entity.Deal{}, domainerrors.ErrBrandNotFound
	}

	srv.log(ctx).Info("Creating deal", "brandID", brandID, "title", input.Title)

	deal := entity.Deal{
		Type:        input.Type,
		Title:       input.Title,
		Tagline:     input.Tagline,
		Description: input.Description,
		Picture:     input.Picture,
		Banner:      input.Banner,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedAt:   time.Now(),
	}
	if deal.Type == "" {
		deal.Type = entity.DealTypeDeal
	}

	created, err := srv.gateway.CreateDeal(ctx, brandID, deal)
	if err != nil {
		return entity.Deal{}, gatewayError(err)
	}
	srv.brands.AddDeal(brandID, created)

	return created, nil
}

// UpdateDeal edits the deal upstream, then mirrors the change. Redemptions
// and creation time are carried over from the cached record untouched.
func (srv *catalogService) UpdateDeal(ctx context.Context, brandID, dealID string, input usecase.DealInput) (entity.Deal, error) {
	brand, ok := srv.brands.GetByID(brandID)
	if !ok {
		return entity.Deal{}, domainerrors.ErrBrandNotFound
	}

	var existing entity.Deal
	found := false
	for _, deal := range brand.Deals {
		if deal.ID == dealID {
			existing = deal
			found = true

			break
		}
	}
	if !found {
		return entity.Deal{}, domainerrors.ErrDealNotFound
	}

	srv.log(ctx).Info("Updating deal", "brandID", brandID, "dealID", dealID)

	updated := existing
	if input.Type != "" {
		updated.Type = input.Type
	}
	updated.Title = input.Title
	updated.Tagline = input.Tagline
	updated.Description = input.Description
	updated.Picture = input.Picture
	updated.Banner = input.Banner
	updated.StartDate = input.StartDate
	updated.EndDate = input.EndDate

	if err := srv.gateway.EditDeal(ctx, brandID, updated); err != nil {
		return entity.Deal{}, gatewayError(err)
	}
	srv.brands.UpdateDeal(brandID, updated)

	return updated, nil
}

// DeleteDeal removes the deal upstream, then from the owning brand's list.
func (srv *catalogService) DeleteDeal(ctx context.Context, brandID, dealID string) error {
	srv.log(ctx).Info("Deleting deal", "brandID", brandID, "dealID", dealID)

	if err := srv.gateway.DeleteDeal(ctx, brandID, dealID); err != nil {
		return gatewayError(err)
	}
	srv.brands.RemoveDeal(brandID, dealID)

	return nil
}

// FindDealByTitle locates a deal inside a brand by exact title match.
func FindDealByTitle(brand entity.Brand, title string) (entity.Deal, bool) {
	for _, deal := range brand.Deals {
		if deal.Title == title {
			return deal, true
		}
	}

	return entity.Deal{}, false
}
