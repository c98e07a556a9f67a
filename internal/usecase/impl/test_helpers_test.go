package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"squareone/internal/domain/entity"
	"squareone/internal/domain/repository"
	"squareone/internal/domain/service"
	"squareone/internal/infra/persistence/blob"
	"squareone/internal/infra/persistence/memory"

	"gocloud.dev/blob/memblob"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testStores struct {
	brands repository.BrandStore
	ads    repository.AdStore
	events repository.EventStore
	auth   repository.AuthStore
}

func newTestStores(t *testing.T) testStores {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	snapshots := blob.NewWithBucket(bucket)
	logger := testLogger()

	return testStores{
		brands: memory.NewBrandStore(memory.BrandStoreParams{Snapshots: snapshots, Logger: logger}),
		ads:    memory.NewAdStore(memory.AdStoreParams{Snapshots: snapshots, Logger: logger}),
		events: memory.NewEventStore(memory.EventStoreParams{Snapshots: snapshots, Logger: logger}),
		auth:   memory.NewAuthStore(memory.AuthStoreParams{Snapshots: snapshots, Logger: logger}),
	}
}

// fakeGateway implements service.PlatformGateway with overridable function
// fields. Unset calls fail the test via the nil dereference, which is the
// signal a test exercised an endpoint it did not mean to.
type fakeGateway struct {
	login       func(ctx context.Context, email, password string) (entity.Admin, error)
	editProfile func(ctx context.Context, admin entity.Admin) error

	fetchBrands func(ctx context.Context) ([]entity.Brand, error)
	createBrand func(ctx context.Context, brand entity.Brand) (entity.Brand, error)
	editBrand   func(ctx context.Context, brand entity.Brand) error
	deleteBrand func(ctx context.Context, id string) error

	createDeal func(ctx context.Context, brandID string, deal entity.Deal) (entity.Deal, error)
	editDeal   func(ctx context.Context, brandID string, deal entity.Deal) error
	deleteDeal func(ctx context.Context, brandID, dealID string) error

	fetchAds func(ctx context.Context) ([]entity.Ad, error)
	createAd func(ctx context.Context, ad entity.Ad) (entity.Ad, error)
	deleteAd func(ctx context.Context, id string) error

	fetchEvents func(ctx context.Context) ([]entity.Event, error)
	createEvent func(ctx context.Context, event entity.Event) (entity.Event, error)
	editEvent   func(ctx context.Context, event entity.Event) error
	deleteEvent func(ctx context.Context, id string) error

	fetchUsers func(ctx context.Context) ([]entity.User, error)

	fetchSupportMessages func(ctx context.Context) ([]entity.SupportMessage, error)
	editSupportStatus    func(ctx context.Context, id string, open bool) error

	sendBroadcast func(ctx context.Context, broadcast entity.Broadcast) error
}

var _ service.PlatformGateway = (*fakeGateway)(nil)

func (g *fakeGateway) Login(ctx context.Context, email, password string) (entity.Admin, error) {
	return g.login(ctx, email, password)
}

func (g *fakeGateway) EditProfile(ctx context.Context, admin entity.Admin) error {
	return g.editProfile(ctx, admin)
}

func (g *fakeGateway) FetchBrands(ctx context.Context) ([]entity.Brand, error) {
	return g.fetchBrands(ctx)
}

func (g *fakeGateway) CreateBrand(ctx context.Context, brand entity.Brand) (entity.Brand, error) {
	return g.createBrand(ctx, brand)
}

func (g *fakeGateway) EditBrand(ctx context.Context, brand entity.Brand) error {
	return g.editBrand(ctx, brand)
}

func (g *fakeGateway) DeleteBrand(ctx context.Context, id string) error {
	return g.deleteBrand(ctx, id)
}

func (g *fakeGateway) CreateDeal(ctx context.Context, brandID string, deal entity.Deal) (entity.Deal, error) {
	return g.createDeal(ctx, brandID, deal)
}

func (g *fakeGateway) EditDeal(ctx context.Context, brandID string, deal entity.Deal) error {
	return g.editDeal(ctx, brandID, deal)
}

func (g *fakeGateway) DeleteDeal(ctx context.Context, brandID, dealID string) error {
	return g.deleteDeal(ctx, brandID, dealID)
}

func (g *fakeGateway) FetchAds(ctx context.Context) ([]entity.Ad, error) {
	return g.fetchAds(ctx)
}

func (g *fakeGateway) CreateAd(ctx context.Context, ad entity.Ad) (entity.Ad, error) {
	return g.createAd(ctx, ad)
}

func (g *fakeGateway) DeleteAd(ctx context.Context, id string) error {
	return g.deleteAd(ctx, id)
}

func (g *fakeGateway) FetchEvents(ctx context.Context) ([]entity.Event, error) {
	return g.fetchEvents(ctx)
}

func (g *fakeGateway) CreateEvent(ctx context.Context, event entity.Event) (entity.Event, error) {
	return g.createEvent(ctx, event)
}

func (g *fakeGateway) EditEvent(ctx context.Context, event entity.Event) error {
	return g.editEvent(ctx, event)
}

func (g *fakeGateway) DeleteEvent(ctx context.Context, id string) error {
	return g.deleteEvent(ctx, id)
}

func (g *fakeGateway) FetchUsers(ctx context.Context) ([]entity.User, error) {
	return g.fetchUsers(ctx)
}

func (g *fakeGateway) FetchSupportMessages(ctx context.Context) ([]entity.SupportMessage, error) {
	return g.fetchSupportMessages(ctx)
}

func (g *fakeGateway) EditSupportStatus(ctx context.Context, id string, open bool) error {
	return g.editSupportStatus(ctx, id, open)
}

func (g *fakeGateway) SendBroadcast(ctx context.Context, broadcast entity.Broadcast) error {
	return g.sendBroadcast(ctx, broadcast)
}
