package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/service"
	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/internal/validators"
	"github.com/MKhiriev/go-book-tracker/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                          http.StatusBadRequest,
	service.ErrInvalidDataProvided:          http.StatusBadRequest,
	service.ErrInvalidCredentials:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:      http.StatusUnauthorized,
	service.ErrEmptySearchTerm:              http.StatusBadRequest,
	validators.ErrMissingRequiredBookFields: http.StatusBadRequest,
	models.ErrInvalidBookQuery:              http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:    http.StatusUnauthorized,
	store.ErrBookNotFound:      http.StatusNotFound,

	adapter.ErrNoResponse: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessages holds the client-facing text of well-known errors.
// Order matters: the first match wins, so wrapped sentinels precede
// the ones they wrap.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrInvalidJSON, "Invalid JSON was passed"},
	{validators.ErrMissingRequiredBookFields, "Send all required fields: title, author, publishYear, status, totalPages"},
	{store.ErrEmailAlreadyExists, "User with this email already exists"},
	{store.ErrUsernameAlreadyExists, "User with this username already exists"},
	{store.ErrUserAlreadyExists, "User already exists"},
	{service.ErrInvalidCredentials, "Invalid email or password"},
	{store.ErrBookNotFound, "Book not found"},
	{service.ErrEmptySearchTerm, `Query parameter "q" (e.g., title, author, ISBN) is required for external search.`},
	{adapter.ErrNoResponse, "No response received from catalog service."},
	{service.ErrInvalidDataProvided, "Invalid data provided"},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Field-level validation
// failures keep their per-attribute details.
func errorResponse(err error) models.ErrorResponse {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return models.ErrorResponse{Message: validationErr.Message, Errors: validationErr.Fields}
	}
	if errors.Is(err, models.ErrInvalidBookQuery) {
		return models.ErrorResponse{Message: err.Error()}
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return models.ErrorResponse{Message: m.message}
		}
	}

	return models.ErrorResponse{Message: err.Error()}
}

// writeError logs err and answers with its mapped status and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, errorResponse(err), status)
}
