package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/internal/validators"
	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerService struct {
	calls int

	createFn func(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error)
	updateFn func(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error)
}

func (m *mockInnerService) CreateBook(ctx context.Context, ownerID string, input models.BookInput) (models.Book, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, input)
	}
	return models.Book{}, nil
}
func (m *mockInnerService) GetBook(ctx context.Context, ownerID, bookID string) (models.Book, error) {
	m.calls++
	return models.Book{ID: bookID}, nil
}
func (m *mockInnerService) ListBooks(ctx context.Context, ownerID string, query models.BookQuery) ([]models.Book, error) {
	m.calls++
	return []models.Book{}, nil
}
func (m *mockInnerService) UpdateBook(ctx context.Context, ownerID, bookID string, input models.BookInput) (models.Book, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, bookID, input)
	}
	return models.Book{}, nil
}
func (m *mockInnerService) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	m.calls++
	return nil
}

type mockValidator struct {
	validateFn func(ctx context.Context, i any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, i any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, i, fields...)
	}
	return nil
}

func newValidationSvc(inner *mockInnerService) BookService {
	return NewBookValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// CreateBook / UpdateBook
// ─────────────────────────────────────────────

func TestBookValidationService_CreateBook_Valid(t *testing.T) {
	inner := &mockInnerService{}
	svc := newValidationSvc(inner)

	_, err := svc.CreateBook(context.Background(), ownerID, validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestBookValidationService_CreateBook_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.BookInput)
	}{
		{"no title", func(in *models.BookInput) { in.Title = nil }},
		{"blank author", func(in *models.BookInput) { in.Author = ptr("   ") }},
		{"zero year", func(in *models.BookInput) { in.PublishYear = ptr(0) }},
		{"no status", func(in *models.BookInput) { in.Status = nil }},
		{"zero pages", func(in *models.BookInput) { in.TotalPages = ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerService{}
			svc := newValidationSvc(inner)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateBook(context.Background(), ownerID, input)
			assert.ErrorIs(t, err, validators.ErrMissingRequiredBookFields)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.Zero(t, inner.calls)
		})
	}
}

func TestBookValidationService_CreateBook_InvalidAttributes(t *testing.T) {
	inner := &mockInnerService{}
	svc := newValidationSvc(inner)

	input := validInput()
	input.Status = ptr(models.BookStatus("Abandoned"))
	input.Rating = ptr(7.5)

	_, err := svc.CreateBook(context.Background(), ownerID, input)

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 2)
	assert.Zero(t, inner.calls)
}

func TestBookValidationService_UpdateBook(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		inner := &mockInnerService{}
		_, err := newValidationSvc(inner).UpdateBook(context.Background(), ownerID, "123", validInput())
		assert.ErrorIs(t, err, store.ErrBookNotFound)
		assert.Zero(t, inner.calls)
	})

	t.Run("invalid payload wins over malformed id", func(t *testing.T) {
		inner := &mockInnerService{}
		_, err := newValidationSvc(inner).UpdateBook(context.Background(), ownerID, "123", models.BookInput{})
		assert.ErrorIs(t, err, validators.ErrMissingRequiredBookFields)
	})

	t.Run("valid", func(t *testing.T) {
		inner := &mockInnerService{
			updateFn: func(_ context.Context, o, b string, _ models.BookInput) (models.Book, error) {
				return models.Book{ID: b, UserID: o}, nil
			},
		}
		book, err := newValidationSvc(inner).UpdateBook(context.Background(), ownerID, bookID, validInput())
		require.NoError(t, err)
		assert.Equal(t, bookID, book.ID)
	})
}

// ─────────────────────────────────────────────
// Get / Delete / List
// ─────────────────────────────────────────────

func TestBookValidationService_MalformedIDIsNotFound(t *testing.T) {
	inner := &mockInnerService{}
	svc := newValidationSvc(inner)
	ctx := context.Background()

	_, err := svc.GetBook(ctx, ownerID, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrBookNotFound)

	err = svc.DeleteBook(ctx, ownerID, "64b7f0c2e4b0a1a2b3c4d5e6")
	assert.ErrorIs(t, err, store.ErrBookNotFound)

	assert.Zero(t, inner.calls)

	_, err = svc.GetBook(ctx, ownerID, bookID)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestBookValidationService_ListBooks_RatingRange(t *testing.T) {
	inner := &mockInnerService{}
	svc := newValidationSvc(inner)

	_, err := svc.ListBooks(context.Background(), ownerID, models.BookQuery{MinRating: ptr(4.0), MaxRating: ptr(2.0)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, inner.calls)

	list, err := svc.ListBooks(context.Background(), ownerID, models.BookQuery{MinRating: ptr(2.0), MaxRating: ptr(4.0)})
	require.NoError(t, err)
	assert.NotNil(t, list)
}

func TestBookValidationService_ValidatorErrorIsWrapped(t *testing.T) {
	inner := &mockInnerService{}
	sentinel := errors.New("boom")

	svc := &BookValidationService{
		inner:     inner,
		validator: &mockValidator{validateFn: func(context.Context, any, ...string) error { return sentinel }},
	}

	_, err := svc.CreateBook(context.Background(), ownerID, validInput())
	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
