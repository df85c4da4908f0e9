package validators

import (
	"context"

	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/go-playground/validator/v10"
)

// UserValidator validates registration and login payloads.
// Callers normalize the payload (trim, lowercase email) before validating.
type UserValidator struct {
	engine *validator.Validate
}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{engine: newEngine()}
}

// Validate checks a models.RegisterRequest or models.LoginRequest against
// the rules declared in their struct tags. Field scoping is not supported
// for these types; any scope is rejected with ErrUnknownField.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest:
		return v.validateStruct(ctx, value, "invalid registration data")
	case models.LoginRequest, *models.LoginRequest:
		return v.validateStruct(ctx, value, "invalid login data")
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateStruct(ctx context.Context, value any, message string) error {
	if err := v.engine.StructCtx(ctx, value); err != nil {
		return toValidationError(err, message)
	}
	return nil
}
