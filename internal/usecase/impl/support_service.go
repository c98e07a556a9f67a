package impl

import (
	"context"
	"log/slog"

	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	"squareone/internal/domain/service"
	"squareone/internal/usecase"

	"go.uber.org/fx"
)

// supportService implements the SupportUsecase interface. Tickets always
// read through to the platform API; they are never mirrored.
type supportService struct {
	fx.In

	gateway service.PlatformGateway
	logger  *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(
	gateway service.PlatformGateway,
	logger *slog.Logger,
) usecase.SupportUsecase {
	return &supportService{
		gateway: gateway,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *supportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *supportService) ListMessages(ctx context.Context, filter usecase.SupportFilter) ([]entity.SupportMessage, error) {
	messages, err := srv.gateway.FetchSupportMessages(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}

	switch filter {
	case usecase.SupportFilterInProgress:
		return filterMessages(messages, true), nil
	case usecase.SupportFilterResolved:
		return filterMessages(messages, false), nil
	default:
		return messages, nil
	}
}

// Resolve flips the ticket to closed upstream.
func (srv *supportService) Resolve(ctx context.Context, id string) error {
	srv.log(ctx).Info("Resolving support ticket", "ticketID", id)

	if err := srv.gateway.EditSupportStatus(ctx, id, false); err != nil {
		return gatewayError(err)
	}

	return nil
}

func filterMessages(messages []entity.SupportMessage, open bool) []entity.SupportMessage {
	filtered := make([]entity.SupportMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Open == open {
			filtered = append(filtered, msg)
		}
	}

	return filtered
}
