package usecase

import (
	"context"

	"squareone/internal/domain/entity"
)

// SupportFilter selects which tickets to list.
type SupportFilter string

const (
	SupportFilterAll        SupportFilter = "all"
	SupportFilterInProgress SupportFilter = "in_progress"
	SupportFilterResolved   SupportFilter = "resolved"
)

// SupportUsecase serves and resolves support tickets. Tickets are not
// mirrored in a persisted store; the support screen always reads through to
// the platform API.
type SupportUsecase interface {
	ListMessages(ctx context.Context, filter SupportFilter) ([]entity.SupportMessage, error)

	// Resolve closes a ticket upstream.
	Resolve(ctx context.Context, id string) error
}
