package impl

import (
	domainerrors "squareone/internal/domain/errors"
	"squareone/internal/domain/service"
	"squareone/internal/errors"
)

// gatewayError translates gateway sentinels into the AppError taxonomy the
// delivery layer knows how to render. An unauthorized response here means
// the platform rejected the dashboard itself; only the login flow maps it
// to bad operator credentials.
func gatewayError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return domainerrors.ErrUpstreamRejected.WrapMessage(err.Error())
	case errors.Is(err, service.ErrBadPayload):
		return domainerrors.ErrUpstreamBadPayload.WrapMessage(err.Error())
	case errors.Is(err, service.ErrUnavailable):
		return domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	default:
		return errors.WithStack(err)
	}
}
