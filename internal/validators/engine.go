package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/go-playground/validator/v10"
)

// emailPattern is the address shape accepted at registration, applied in
// addition to the library's RFC 5322 "email" check.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// newEngine returns a validator.Validate that reports fields by their JSON
// names and knows the book tracker's custom tags.
func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "bookstatus", func(fl validator.FieldLevel) bool {
		return models.BookStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "bookformat", func(fl validator.FieldLevel) bool {
		return models.BookFormat(fl.Field().String()).IsValid()
	})
	mustRegister(v, "bookemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// toValidationError converts the library error into a *ValidationError.
// Errors that are not field failures are returned unchanged.
func toValidationError(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &ValidationError{Message: message, Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return result
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email", "bookemail":
		return "must be a valid email address"
	case "bcryptlen":
		return fmt.Sprintf("must be at most %d bytes long", maxPasswordBytes)
	case "bookstatus":
		return "must be one of: " + joinValues(models.BookStatuses)
	case "bookformat":
		return "must be one of: " + joinValues(models.BookFormats)
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
