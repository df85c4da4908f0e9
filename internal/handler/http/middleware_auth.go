package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.ParseToken], resolves the subject with
// [service.AuthService.GetUserByID] and stores the user (without password)
// in the request context under [utils.UserCtxKey].
//
// Rejections answer 401 with one of three messages:
//   - no or malformed header:        "Not authorized, no token"
//   - token fails verification:      "Not authorized, token failed"
//   - token valid, user is gone:     "Not authorized, user not found"
//
// A store failure while resolving the user answers 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(ErrNoToken).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.MessageResponse{Message: msgTokenFailed}, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(ErrUserFromTokenNotFound).Str("user_id", token.UserID).Send()
				utils.WriteJSON(w, models.MessageResponse{Message: msgUserNotFound}, http.StatusUnauthorized)
				return
			}
			log.Err(err).Str("user_id", token.UserID).Msg("error resolving user from token")
			utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
