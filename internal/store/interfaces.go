package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-book-tracker/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user (ID and password digest already set) and
	// returns the stored row. Unique collisions yield ErrEmailAlreadyExists
	// or ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given normalized email,
	// including the password digest, or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// BookRepository persists book records. Every method is scoped to the
// owner: a record of another user is reported as ErrBookNotFound.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBook(ctx context.Context, userID, bookID string) (models.Book, error)
	ListBooks(ctx context.Context, userID string, query models.BookQuery) ([]models.Book, error)
	// UpdateBook replaces the mutable attributes of the record matching
	// book.ID and book.UserID and returns the stored row.
	UpdateBook(ctx context.Context, book models.Book) (models.Book, error)
	DeleteBook(ctx context.Context, userID, bookID string) error
}

// ErrorClassificator decides whether a failed database operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
