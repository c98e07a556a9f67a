package impl

import (
	"context"
	"log/slog"

	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/repository"
	"squareone/internal/domain/service"
	"squareone/internal/usecase"

	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	fx.In

	gateway service.PlatformGateway
	events  repository.EventStore
	logger  *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(
	gateway service.PlatformGateway,
	events repository.EventStore,
	logger *slog.Logger,
) usecase.EventUsecase {
	return &eventService{
		gateway: gateway,
		events:  events,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshEvents replaces the event mirror with the upstream collection.
func (srv *eventService) RefreshEvents(ctx context.Context) ([]entity.Event, error) {
	srv.log(ctx).Debug("Refreshing event mirror")

	events, err := srv.gateway.FetchEvents(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}
	srv.events.ReplaceAll(events)

	return events, nil
}

func (srv *eventService) ListEvents(ctx context.Context, refresh bool) ([]entity.Event, error) {
	if refresh {
		return srv.RefreshEvents(ctx)
	}

	cached := srv.events.All()
	if len(cached) == 0 {
		return srv.RefreshEvents(ctx)
	}

	return cached, nil
}

func (srv *eventService) GetEvent(ctx context.Context, id string) (entity.Event, error) {
	event, ok := srv.events.GetByID(id)
	if ok {
		return event, nil
	}

	if len(srv.events.All()) == 0 {
		if _, err := srv.RefreshEvents(ctx); err != nil {
			return entity.Event{}, err
		}
		if event, ok = srv.events.GetByID(id); ok {
			return event, nil
		}
	}

	return entity.Event{}, domainerrors.ErrEventNotFound
}

func (srv *eventService) CreateEvent(ctx context.Context, input usecase.EventInput) (entity.Event, error) {
	srv.log(ctx).Info("Creating event", "title", input.Title)

	event := entity.Event{
		Title:       input.Title,
		Description: input.Description,
		Background:  input.Background,
		Banner:      input.Banner,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Activities:  input.Activities,
	}

	created, err := srv.gateway.CreateEvent(ctx, event)
	if err != nil {
		return entity.Event{}, gatewayError(err)
	}
	srv.events.Add(created)

	return created, nil
}

// UpdateEvent edits the event upstream, then mirrors the change. Liked and
// Going counters are carried over from the cached record untouched.
func (srv *eventService) UpdateEvent(ctx context.Context, id string, input usecase.EventInput) (entity.Event, error) {
	existing, ok := srv.events.GetByID(id)
	if !ok {
		return entity.Event{}, domainerrors.ErrEventNotFound
	}

	srv.log(ctx).Info("Updating event", "eventID", id)

	updated := existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Background = input.Background
	updated.Banner = input.Banner
	updated.StartDate = input.StartDate
	updated.EndDate = input.EndDate
	updated.Activities = input.Activities

	if err := srv.gateway.EditEvent(ctx, updated); err != nil {
		return entity.Event{}, gatewayError(err)
	}
	srv.events.Update(id, updated)

	return updated, nil
}

func (srv *eventService) DeleteEvent(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting event", "eventID", id)

	if err := srv.gateway.DeleteEvent(ctx, id); err != nil {
		return gatewayError(err)
	}
	srv.events.Remove(id)

	return nil
}
