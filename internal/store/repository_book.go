// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/jackc/pgerrcode"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// Every statement carries the owner in its WHERE clause, so a record of
// another user behaves exactly like a missing one.
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var book models.Book
	err := row.Scan(
		&book.ID,
		&book.UserID,
		&book.Title,
		&book.Author,
		&book.PublishYear,
		&book.CoverImage,
		&book.Status,
		&book.StartDate,
		&book.EndDate,
		&book.CurrentPage,
		&book.TotalPages,
		&book.Rating,
		&book.Notes,
		&book.Format,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	return book, err
}

// CreateBook inserts book and returns the stored row.
func (b *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookQuery(book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("failed to create query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBook(b.QueryRowContext(ctx, query, args...))
	if err != nil {
		b.logFailure(ctx, "*bookRepository.CreateBook", err)
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("book_id", created.ID).Str("user_id", created.UserID).Msg("book created")
	return created, nil
}

// GetBook returns the book with bookID owned by userID.
func (b *bookRepository) GetBook(ctx context.Context, userID, bookID string) (models.Book, error) {
	book, err := scanBook(b.QueryRowContext(ctx, getBook, bookID, userID))
	if err != nil {
		return models.Book{}, b.notFoundOr(ctx, "*bookRepository.GetBook", err)
	}

	return book, nil
}

// ListBooks returns the books of userID matching query, ordered as it asks.
// An empty result is a non-nil empty slice.
func (b *bookRepository) ListBooks(ctx context.Context, userID string, query models.BookQuery) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListBooksQuery(userID, query)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Str("user_id", userID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		b.logFailure(ctx, "*bookRepository.ListBooks", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.ListBooks").Str("user_id", userID).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Str("user_id", userID).Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// UpdateBook replaces the mutable attributes of the book matching book.ID
// and book.UserID in a single conditional statement.
func (b *bookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Str("book_id", book.ID).Msg("failed to create query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanBook(b.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Book{}, b.notFoundOr(ctx, "*bookRepository.UpdateBook", err)
	}

	return updated, nil
}

// DeleteBook removes the book with bookID owned by userID.
func (b *bookRepository) DeleteBook(ctx context.Context, userID, bookID string) error {
	log := logger.FromContext(ctx)

	result, err := b.ExecContext(ctx, deleteBook, bookID, userID)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrBookNotFound
		}
		b.logFailure(ctx, "*bookRepository.DeleteBook", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// notFoundOr turns "no row" and malformed-id errors into [ErrBookNotFound]
// and wraps everything else.
func (b *bookRepository) notFoundOr(ctx context.Context, fn string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrBookNotFound
	}

	b.logFailure(ctx, fn, err)
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
