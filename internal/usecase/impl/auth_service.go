package impl

import (
	"context"
	"log/slog"

	deliverycontext "squareone/internal/delivery/context"
	"squareone/internal/domain/entity"
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/repository"
	"squareone/internal/domain/service"
	"squareone/internal/errors"
	"squareone/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	fx.In

	gateway service.PlatformGateway
	tokens  service.TokenService
	auth    repository.AuthStore
	logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	gateway service.PlatformGateway,
	tokens service.TokenService,
	auth repository.AuthStore,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		gateway: gateway,
		tokens:  tokens,
		auth:    auth,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials against the platform API, caches the operator
// identity and returns a dashboard session token.
func (srv *authService) Login(ctx context.Context, email, password string) (entity.Admin, string, error) {
	srv.log(ctx).Info("Operator login attempt", "email", email)

	admin, err := srv.gateway.Login(ctx, email, password)
	if err != nil {
		// Only here does an upstream 401 mean the operator's own
		// credentials were wrong.
		if errors.Is(err, service.ErrUnauthorized) {
			return entity.Admin{}, "", domainerrors.ErrInvalidCredentials.WrapMessage(err.Error())
		}

		return entity.Admin{}, "", gatewayError(err)
	}

	token, err := srv.tokens.GenerateToken(admin)
	if err != nil {
		return entity.Admin{}, "", domainerrors.ErrInternalError.WrapMessage("failed to issue session token")
	}
	srv.auth.SetAdmin(admin)

	return admin, token, nil
}

// Profile returns the cached operator identity.
func (srv *authService) Profile(_ context.Context) (entity.Admin, error) {
	admin, ok := srv.auth.Admin()
	if !ok {
		return entity.Admin{}, domainerrors.ErrAdminNotAuthenticated
	}

	return admin, nil
}

// UpdateProfile pushes the edit upstream, then updates the cached identity.
func (srv *authService) UpdateProfile(ctx context.Context, input usecase.ProfileInput) (entity.Admin, error) {
	admin, ok := srv.auth.Admin()
	if !ok {
		return entity.Admin{}, domainerrors.ErrAdminNotAuthenticated
	}

	srv.log(ctx).Info("Updating operator profile", "adminID", admin.ID)

	updated := admin
	updated.Email = input.Email
	updated.FullName = input.FullName

	if err := srv.gateway.EditProfile(ctx, updated); err != nil {
		return entity.Admin{}, gatewayError(err)
	}
	srv.auth.SetAdmin(updated)

	return updated, nil
}

// RefreshUsers replaces the end-user mirror with the upstream collection.
func (srv *authService) RefreshUsers(ctx context.Context) ([]entity.User, error) {
	srv.log(ctx).Debug("Refreshing user mirror")

	users, err := srv.gateway.FetchUsers(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}
	srv.auth.ReplaceUsers(users)

	return users, nil
}

func (srv *authService) ListUsers(ctx context.Context, refresh bool) ([]entity.User, error) {
	if refresh {
		return srv.RefreshUsers(ctx)
	}

	cached := srv.auth.Users()
	if len(cached) == 0 {
		return srv.RefreshUsers(ctx)
	}

	return cached, nil
}
