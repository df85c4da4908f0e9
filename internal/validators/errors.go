package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-book-tracker/models"
)

var (
	// ErrUnsupportedType is returned by a Validator given a value it does not know.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrUnknownField is returned when a validation scope names an unknown field.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrMissingRequiredBookFields is returned when a book payload lacks any
	// of title, author, publishYear, status or totalPages.
	ErrMissingRequiredBookFields = errors.New("missing required book fields")
)

// ValidationError carries the per-field failures of a request body.
type ValidationError struct {
	// Message summarizes the failure, e.g. "invalid book data".
	Message string
	// Fields lists every invalid attribute by its JSON name.
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	if len(parts) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}
