// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "squareone/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request payloads against their struct
// tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator echo will call for every c.Validate.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as a validation
// AppError carrying the field diagnostics.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
