package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-book-tracker/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BookService manages the book records of a single owner per call. ownerID
// always comes from the authenticated identity.
type BookService interface {
	CreateBook(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error)
	GetBook(ctx context.Context, ownerID, bookID string) (models.Book, error)
	ListBooks(ctx context.Context, ownerID string, query models.BookQuery) ([]models.Book, error)
	UpdateBook(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error)
	DeleteBook(ctx context.Context, ownerID, bookID string) error
}

// BookServiceWrapper defines middleware composition for BookService.
// Implementations wrap an existing BookService to add behavior such as
// logging or validating.
type BookServiceWrapper interface {
	Wrap(BookService) BookService // returns a decorated BookService applying additional behavior
}

type CatalogService interface {
	SearchCatalog(ctx context.Context, term string) (json.RawMessage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
