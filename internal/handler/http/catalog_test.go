package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithCatalog(catalog service.CatalogService) *Handler {
	return newTestHandler(&service.Services{CatalogService: catalog})
}

func TestSearchCatalog(t *testing.T) {
	tests := []struct {
		name       string
		payload    json.RawMessage
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "payload relayed verbatim",
			payload:    json.RawMessage(`{"kind":"books#volumes","totalItems":1,"items":[{"id":"x"}]}`),
			wantStatus: http.StatusOK,
			wantBody:   `{"kind":"books#volumes","totalItems":1,"items":[{"id":"x"}]}`,
		},
		{
			name:       "empty term",
			err:        service.ErrEmptySearchTerm,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Query parameter \"q\" (e.g., title, author, ISBN) is required for external search."}`,
		},
		{
			name:       "upstream JSON error keeps status",
			err:        &adapter.UpstreamStatusError{StatusCode: http.StatusForbidden, Body: []byte(`{"error":{"code":403}}`)},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":{"error":{"code":403}}}`,
		},
		{
			name:       "upstream text error",
			err:        fmt.Errorf("search failed: %w", &adapter.UpstreamStatusError{StatusCode: http.StatusServiceUnavailable, Body: []byte("try later")}),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"try later"}`,
		},
		{
			name:       "no response",
			err:        fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrNoResponse),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"No response received from catalog service."}`,
		},
		{
			name:       "other fault",
			err:        errors.New("request setup failed"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"request setup failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTerm string
			catalog := &mockCatalogService{
				searchFn: func(_ context.Context, term string) (json.RawMessage, error) {
					gotTerm = term
					return tt.payload, tt.err
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/books/external-search?q=dune+herbert", nil)
			rec := httptest.NewRecorder()

			newHandlerWithCatalog(catalog).searchCatalog(rec, asUser(req, alice))

			assert.Equal(t, "dune herbert", gotTerm)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSearchCatalog_RelaysBytesUnchanged(t *testing.T) {
	raw := `{"b": 2,  "a": 1}`
	catalog := &mockCatalogService{
		searchFn: func(_ context.Context, _ string) (json.RawMessage, error) {
			return json.RawMessage(raw), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/books/external-search?q=x", nil)
	rec := httptest.NewRecorder()

	newHandlerWithCatalog(catalog).searchCatalog(rec, req)

	assert.Equal(t, raw, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
