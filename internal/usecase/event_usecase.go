package usecase

import (
	"context"
	"time"

	"squareone/internal/domain/entity"
)

// EventInput carries the editable fields of an event.
type EventInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Background  string    `json:"background"`
	Banner      string    `json:"banner"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Activities  []string  `json:"activities"`
}

// EventUsecase manages the event mirror.
type EventUsecase interface {
	RefreshEvents(ctx context.Context) ([]entity.Event, error)
	ListEvents(ctx context.Context, refresh bool) ([]entity.Event, error)
	GetEvent(ctx context.Context, id string) (entity.Event, error)
	CreateEvent(ctx context.Context, input EventInput) (entity.Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput) (entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
