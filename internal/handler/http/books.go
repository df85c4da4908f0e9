// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgBookUpdated = "Book updated successfully"
	msgBookDeleted = "Book deleted successfully"
)

// owner returns the authenticated user placed into the context by auth.
// Book routes are always mounted behind auth, so a missing user is a
// wiring bug and answers 401 rather than panicking.
func owner(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
	}
	return user, ok
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	user, ok := owner(w, r)
	if !ok {
		return
	}

	query, err := models.ParseBookQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	books, err := h.services.BookService.ListBooks(r.Context(), user.ID, query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewListBooksResponse(books), http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	user, ok := owner(w, r)
	if !ok {
		return
	}

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), user.ID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("book_id", book.ID).Msg("book created")

	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	user, ok := owner(w, r)
	if !ok {
		return
	}

	book, err := h.services.BookService.GetBook(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	user, ok := owner(w, r)
	if !ok {
		return
	}

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	book, err := h.services.BookService.UpdateBook(r.Context(), user.ID, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BookUpdatedResponse{Message: msgBookUpdated, Book: book}, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	user, ok := owner(w, r)
	if !ok {
		return
	}

	bookID := chi.URLParam(r, "id")
	if err := h.services.BookService.DeleteBook(r.Context(), user.ID, bookID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("book_id", bookID).Msg("book deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: msgBookDeleted}, http.StatusOK)
}
