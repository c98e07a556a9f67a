package usecase

import (
	"context"

	"squareone/internal/domain/entity"
)

// ProfileInput carries the editable fields of the operator profile.
type ProfileInput struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
}

// AuthUsecase authenticates the operator against the platform API and owns
// the auth mirror (operator singleton + end-user collection).
type AuthUsecase interface {
	// Login verifies credentials upstream, stores the operator identity and
	// returns a dashboard session token.
	Login(ctx context.Context, email, password string) (entity.Admin, string, error)

	// Profile returns the cached operator identity.
	Profile(ctx context.Context) (entity.Admin, error)

	UpdateProfile(ctx context.Context, input ProfileInput) (entity.Admin, error)

	RefreshUsers(ctx context.Context) ([]entity.User, error)
	ListUsers(ctx context.Context, refresh bool) ([]entity.User, error)
}
