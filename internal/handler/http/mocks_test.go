package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/service"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserByIDFn  func(ctx context.Context, id string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return m.getUserByIDFn(ctx, id)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockBookService struct {
	createFn func(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error)
	getFn    func(ctx context.Context, ownerID, bookID string) (models.Book, error)
	listFn   func(ctx context.Context, ownerID string, query models.BookQuery) ([]models.Book, error)
	updateFn func(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error)
	deleteFn func(ctx context.Context, ownerID, bookID string) error
}

func (m *mockBookService) CreateBook(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error) {
	return m.createFn(ctx, ownerID, input)
}

func (m *mockBookService) GetBook(ctx context.Context, ownerID, bookID string) (models.Book, error) {
	return m.getFn(ctx, ownerID, bookID)
}

func (m *mockBookService) ListBooks(ctx context.Context, ownerID string, query models.BookQuery) ([]models.Book, error) {
	return m.listFn(ctx, ownerID, query)
}

func (m *mockBookService) UpdateBook(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error) {
	return m.updateFn(ctx, ownerID, bookID, input)
}

func (m *mockBookService) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	return m.deleteFn(ctx, ownerID, bookID)
}

type mockCatalogService struct {
	searchFn func(ctx context.Context, term string) (json.RawMessage, error)
}

func (m *mockCatalogService) SearchCatalog(ctx context.Context, term string) (json.RawMessage, error) {
	return m.searchFn(ctx, term)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler builds a Handler over svcs with a no-op logger.
func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, logger.Nop())
}

// asUser returns r carrying user the way the auth middleware leaves it.
func asUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}
