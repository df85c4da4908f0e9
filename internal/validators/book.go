package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/go-playground/validator/v10"
)

// Field scopes understood by [BookValidator].
const (
	// FieldRequired checks that title, author, publishYear, status and
	// totalPages are present and non-zero.
	FieldRequired = "required"

	// FieldAttributes checks enum membership, the rating bound and
	// non-negative page counters.
	FieldAttributes = "attributes"

	// FieldRatingRange checks that a list query's rating bounds are ordered.
	FieldRatingRange = "rating_range"
)

// BookValidator validates book payloads and list queries.
type BookValidator struct {
	engine *validator.Validate
}

// NewBookValidator constructs a BookValidator and returns it as the
// Validator interface.
func NewBookValidator() Validator {
	return &BookValidator{engine: newEngine()}
}

// Validate dispatches on the value type:
//   - models.BookInput - scopes FieldRequired, FieldAttributes (default both)
//   - models.BookQuery - scope FieldRatingRange (default)
func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookInput:
		return v.validateBookInput(ctx, value, fields...)
	case *models.BookInput:
		return v.validateBookInput(ctx, *value, fields...)

	case models.BookQuery:
		return v.validateBookQuery(ctx, value, fields...)
	case *models.BookQuery:
		return v.validateBookQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BookValidator) validateBookInput(ctx context.Context, input models.BookInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldAttributes}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if input.MissingRequired() {
				return ErrMissingRequiredBookFields
			}
		case FieldAttributes:
			if err := v.engine.StructCtx(ctx, input); err != nil {
				return toValidationError(err, "invalid book data")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BookValidator) validateBookQuery(_ context.Context, query models.BookQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRatingRange}
	}

	for _, f := range fields {
		switch f {
		case FieldRatingRange:
			if query.MinRating != nil && query.MaxRating != nil && *query.MinRating > *query.MaxRating {
				return &ValidationError{
					Message: "invalid book query",
					Fields: []models.FieldError{{
						Field:   "minRating",
						Message: fmt.Sprintf("must not exceed maxRating (%g)", *query.MaxRating),
					}},
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
