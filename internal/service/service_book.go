// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/models"
)

type bookService struct {
	bookRepository store.BookRepository
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

// NewBookService returns the BookService that talks to the repository.
// Input is expected to be validated already; see NewBookValidationService.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (b *bookService) CreateBook(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error) {
	book := input.ToBook(ownerID)
	book.ID = b.ids.Generate()

	return b.bookRepository.CreateBook(ctx, book)
}

func (b *bookService) GetBook(ctx context.Context, ownerID, bookID string) (models.Book, error) {
	return b.bookRepository.GetBook(ctx, ownerID, bookID)
}

func (b *bookService) ListBooks(ctx context.Context, ownerID string, query models.BookQuery) ([]models.Book, error) {
	return b.bookRepository.ListBooks(ctx, ownerID, query)
}

// UpdateBook replaces every mutable attribute of the record: optionals the
// client omitted are reset to their defaults.
func (b *bookService) UpdateBook(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error) {
	book := input.ToBook(ownerID)
	book.ID = bookID

	return b.bookRepository.UpdateBook(ctx, book)
}

func (b *bookService) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	return b.bookRepository.DeleteBook(ctx, ownerID, bookID)
}
