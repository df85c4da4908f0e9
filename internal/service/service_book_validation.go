package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/internal/validators"
	"github.com/MKhiriev/go-book-tracker/models"
)

type BookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService() BookServiceWrapper {
	return &BookValidationService{
		validator: validators.NewBookValidator(),
	}
}

func (v *BookValidationService) CreateBook(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateBook(ctx, ownerID, input)
}

// GetBook reports a malformed id as a missing book.
func (v *BookValidationService) GetBook(ctx context.Context, ownerID, bookID string) (models.Book, error) {
	if !utils.IsUUID(bookID) {
		return models.Book{}, store.ErrBookNotFound
	}

	return v.inner.GetBook(ctx, ownerID, bookID)
}

func (v *BookValidationService) ListBooks(ctx context.Context, ownerID string, query models.BookQuery) ([]models.Book, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListBooks(ctx, ownerID, query)
}

// UpdateBook checks the payload before the id, so a bad payload is a 400
// even for a book that does not exist.
func (v *BookValidationService) UpdateBook(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !utils.IsUUID(bookID) {
		return models.Book{}, store.ErrBookNotFound
	}

	return v.inner.UpdateBook(ctx, ownerID, bookID, input)
}

func (v *BookValidationService) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	if !utils.IsUUID(bookID) {
		return store.ErrBookNotFound
	}

	return v.inner.DeleteBook(ctx, ownerID, bookID)
}

func (v *BookValidationService) Wrap(wrapper BookService) BookService {
	v.inner = wrapper
	return v
}
