package usecase

import "context"

// BroadcastInput carries a push announcement, optionally pinned to a deal or
// an event.
type BroadcastInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=deal event general"`
	DealID      string `json:"deal_id"`
	EventID     string `json:"event_id"`
}

// NotificationUsecase sends announcements through the platform API.
type NotificationUsecase interface {
	Broadcast(ctx context.Context, input BroadcastInput) error
}
