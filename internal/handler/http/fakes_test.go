package http

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/models"
)

// memUserRepository is an in-memory store.UserRepository for router tests.
type memUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]models.User)}
}

func (m *memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return models.User{}, store.ErrUsernameAlreadyExists
		}
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return user, nil
}

func (m *memUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memUserRepository) FindUserByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memUserRepository) delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

// memBookRepository is an in-memory store.BookRepository for router tests.
// ListBooks supports the filters and the title/createdAt orderings only.
type memBookRepository struct {
	mu    sync.Mutex
	books map[string]models.Book
	clock time.Time
}

func newMemBookRepository() *memBookRepository {
	return &memBookRepository{
		books: make(map[string]models.Book),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memBookRepository) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memBookRepository) CreateBook(_ context.Context, book models.Book) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book.CreatedAt = m.tick()
	book.UpdatedAt = book.CreatedAt
	m.books[book.ID] = book
	return book, nil
}

func (m *memBookRepository) GetBook(_ context.Context, userID, bookID string) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[bookID]
	if !ok || book.UserID != userID {
		return models.Book{}, store.ErrBookNotFound
	}
	return book, nil
}

func (m *memBookRepository) ListBooks(_ context.Context, userID string, query models.BookQuery) ([]models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	search := strings.ToLower(query.Search)
	result := make([]models.Book, 0)
	for _, b := range m.books {
		switch {
		case b.UserID != userID:
		case search != "" && !strings.Contains(strings.ToLower(b.Title), search) && !strings.Contains(strings.ToLower(b.Author), search):
		case query.Status != nil && b.Status != *query.Status:
		case query.Format != nil && b.Format != *query.Format:
		case query.MinRating != nil && (b.Rating == nil || *b.Rating < *query.MinRating):
		case query.MaxRating != nil && (b.Rating == nil || *b.Rating > *query.MaxRating):
		default:
			result = append(result, b)
		}
	}

	slices.SortFunc(result, func(a, b models.Book) int {
		if query.SortBy == "title" {
			c := cmp.Compare(a.Title, b.Title)
			if query.SortOrder == models.SortDesc {
				c = -c
			}
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (m *memBookRepository) UpdateBook(_ context.Context, book models.Book) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.books[book.ID]
	if !ok || current.UserID != book.UserID {
		return models.Book{}, store.ErrBookNotFound
	}

	book.CreatedAt = current.CreatedAt
	book.UpdatedAt = m.tick()
	m.books[book.ID] = book
	return book, nil
}

func (m *memBookRepository) DeleteBook(_ context.Context, userID, bookID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[bookID]
	if !ok || book.UserID != userID {
		return store.ErrBookNotFound
	}
	delete(m.books, bookID)
	return nil
}

// stubCatalog answers every search with payload.
type stubCatalog struct {
	payload json.RawMessage
}

func (s stubCatalog) Search(_ context.Context, _ string) (json.RawMessage, error) {
	return s.payload, nil
}
