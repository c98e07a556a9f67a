package impl

import (
	"context"
	"testing"
	"time"

	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/service"
	"squareone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEventService(t *testing.T, gateway *fakeGateway) (usecase.EventUsecase, testStores) {
	t.Helper()

	stores := newTestStores(t)

	return NewEventService(gateway, stores.events, testLogger()), stores
}

func TestEventService_RefreshEvents_ReplacesMirror(t *testing.T) {
	upstream := []entity.Event{{ID: "e1", Title: "Night Bazaar"}}
	gateway := &fakeGateway{
		fetchEvents: func(context.Context) ([]entity.Event, error) { return upstream, nil },
	}
	service, stores := createTestEventService(t, gateway)
	stores.events.ReplaceAll([]entity.Event{{ID: "stale"}})

	events, err := service.RefreshEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, upstream, events)
	assert.Equal(t, upstream, stores.events.All())
}

func TestEventService_RefreshEvents_FailureLeavesMirrorUntouched(t *testing.T) {
	gateway := &fakeGateway{
		fetchEvents: func(context.Context) ([]entity.Event, error) { return nil, service.ErrUnavailable },
	}
	svc, stores := createTestEventService(t, gateway)
	cached := []entity.Event{{ID: "e1", Title: "Night Bazaar"}}
	stores.events.ReplaceAll(cached)

	_, err := svc.RefreshEvents(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.Equal(t, cached, stores.events.All())
}

func TestEventService_UpdateEvent_PreservesCounters(t *testing.T) {
	gateway := &fakeGateway{
		editEvent: func(context.Context, entity.Event) error { return nil },
	}
	service, stores := createTestEventService(t, gateway)
	stores.events.ReplaceAll([]entity.Event{
		{ID: "e1", Title: "Night Bazaar", Liked: 12, Going: 40},
	})

	updated, err := service.UpdateEvent(context.Background(), "e1", usecase.EventInput{
		Title:     "Night Bazaar 2.0",
		StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "Night Bazaar 2.0", updated.Title)
	assert.Equal(t, 12, updated.Liked)
	assert.Equal(t, 40, updated.Going)
}

func TestEventService_UpdateEvent_AbsentID(t *testing.T) {
	service, _ := createTestEventService(t, &fakeGateway{})

	_, err := service.UpdateEvent(context.Background(), "ghost", usecase.EventInput{Title: "X"})

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_CreateAndDelete(t *testing.T) {
	gateway := &fakeGateway{
		createEvent: func(_ context.Context, event entity.Event) (entity.Event, error) {
			event.ID = "e-new"

			return event, nil
		},
		deleteEvent: func(context.Context, string) error { return nil },
	}
	service, stores := createTestEventService(t, gateway)

	created, err := service.CreateEvent(context.Background(), usecase.EventInput{
		Title:      "Food Week",
		StartDate:  time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC),
		Activities: []string{"a.png", "b.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "e-new", created.ID)
	assert.Len(t, stores.events.All(), 1)

	require.NoError(t, service.DeleteEvent(context.Background(), "e-new"))
	assert.Empty(t, stores.events.All())
}
