package impl

import (
	"context"
	"log/slog"

	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/service"
	"squareone/internal/usecase"

	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	fx.In

	gateway service.PlatformGateway
	logger  *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	gateway service.PlatformGateway,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		gateway: gateway,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Broadcast sends an announcement through the platform API. An announcement
// may pin a deal or an event, never both.
func (srv *notificationService) Broadcast(ctx context.Context, input usecase.BroadcastInput) error {
	if input.DealID != "" && input.EventID != "" {
		return domainerrors.ErrValidationFailed.WrapMessage("announcement cannot reference both a deal and an event")
	}

	srv.log(ctx).Info("Sending broadcast", "title", input.Title, "type", input.Type)

	broadcast := entity.Broadcast{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		DealID:      input.DealID,
		EventID:     input.EventID,
	}

	if err := srv.gateway.SendBroadcast(ctx, broadcast); err != nil {
		return gatewayError(err)
	}

	return nil
}
