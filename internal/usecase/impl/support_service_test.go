package impl

import (
	"context"
	"testing"

	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/service"
	"squareone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportService_ListMessages_Filters(t *testing.T) {
	tickets := []entity.SupportMessage{
		{ID: "s1", Title: "App crash", Open: true},
		{ID: "s2", Title: "Refund question", Open: false},
		{ID: "s3", Title: "Login issue", Open: true},
	}
	gateway := &fakeGateway{
		fetchSupportMessages: func(context.Context) ([]entity.SupportMessage, error) { return tickets, nil },
	}
	svc := NewSupportService(gateway, testLogger())

	all, err := svc.ListMessages(context.Background(), usecase.SupportFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	open, err := svc.ListMessages(context.Background(), usecase.SupportFilterInProgress)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "s1", open[0].ID)

	resolved, err := svc.ListMessages(context.Background(), usecase.SupportFilterResolved)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "s2", resolved[0].ID)
}

func TestSupportService_ListMessages_UpstreamFailure(t *testing.T) {
	gateway := &fakeGateway{
		fetchSupportMessages: func(context.Context) ([]entity.SupportMessage, error) {
			return nil, service.ErrUnavailable
		},
	}
	svc := NewSupportService(gateway, testLogger())

	_, err := svc.ListMessages(context.Background(), usecase.SupportFilterAll)

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestSupportService_Resolve_ClosesTicket(t *testing.T) {
	var sentID string
	var sentOpen bool
	gateway := &fakeGateway{
		editSupportStatus: func(_ context.Context, id string, open bool) error {
			sentID = id
			sentOpen = open

			return nil
		},
	}
	svc := NewSupportService(gateway, testLogger())

	require.NoError(t, svc.Resolve(context.Background(), "s1"))

	assert.Equal(t, "s1", sentID)
	assert.False(t, sentOpen)
}
