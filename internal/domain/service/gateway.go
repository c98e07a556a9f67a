// Package service defines outbound ports consumed by the use cases.
package service

import (
	"context"
	"errors"

	"squareone/internal/domain/entity"
)

// Gateway outcome errors. The use cases decide what a failed call means for
// the cache; the gateway itself never touches a store.
var (
	// ErrUnavailable covers transport failures and non-2xx responses.
	ErrUnavailable = errors.New("platform API unavailable")
	// ErrBadPayload covers 2xx responses whose data is not the expected shape.
	ErrBadPayload = errors.New("platform API returned unexpected payload")
	// ErrUnauthorized covers rejected credentials on login.
	ErrUnauthorized = errors.New("platform API rejected credentials")
)

// PlatformGateway is the client for the upstream platform API. All writes go
// through here first; local stores are mutated only after a call succeeds.
type PlatformGateway interface {
	Login(ctx context.Context, email, password string) (entity.Admin, error)
	EditProfile(ctx context.Context, admin entity.Admin) error

	FetchBrands(ctx context.Context) ([]entity.Brand, error)
	CreateBrand(ctx context.Context, brand entity.Brand) (entity.Brand, error)
	EditBrand(ctx context.Context, brand entity.Brand) error
	DeleteBrand(ctx context.Context, id string) error

	CreateDeal(ctx context.Context, brandID string, deal entity.Deal) (entity.Deal, error)
	EditDeal(ctx context.Context, brandID string, deal entity.Deal) error
	DeleteDeal(ctx context.Context, brandID, dealID string) error

	FetchAds(ctx context.Context) ([]entity.Ad, error)
	CreateAd(ctx context.Context, ad entity.Ad) (entity.Ad, error)
	DeleteAd(ctx context.Context, id string) error

	FetchEvents(ctx context.Context) ([]entity.Event, error)
	CreateEvent(ctx context.Context, event entity.Event) (entity.Event, error)
	EditEvent(ctx context.Context, event entity.Event) error
	DeleteEvent(ctx context.Context, id string) error

	FetchUsers(ctx context.Context) ([]entity.User, error)

	FetchSupportMessages(ctx context.Context) ([]entity.SupportMessage, error)
	EditSupportStatus(ctx context.Context, id string, open bool) error

	SendBroadcast(ctx context.Context, broadcast entity.Broadcast) error
}
