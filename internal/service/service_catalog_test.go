package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_SearchCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock.NewMockCatalogAdapter(ctrl)
	svc := NewCatalogService(catalog, logger.Nop())

	payload := json.RawMessage(`{"totalItems":0}`)
	catalog.EXPECT().Search(gomock.Any(), "dune").Return(payload, nil)

	got, err := svc.SearchCatalog(context.Background(), "  dune ")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestCatalogService_SearchCatalog_EmptyTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewCatalogService(mock.NewMockCatalogAdapter(ctrl), logger.Nop())

	for _, term := range []string{"", "   "} {
		_, err := svc.SearchCatalog(context.Background(), term)
		assert.ErrorIs(t, err, ErrEmptySearchTerm)
	}
}

func TestCatalogService_SearchCatalog_RelaysAdapterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock.NewMockCatalogAdapter(ctrl)
	svc := NewCatalogService(catalog, logger.Nop())

	upstream := &adapter.UpstreamStatusError{StatusCode: http.StatusForbidden, Body: []byte(`{"error":"denied"}`)}
	catalog.EXPECT().Search(gomock.Any(), "dune").Return(nil, upstream)

	_, err := svc.SearchCatalog(context.Background(), "dune")
	assert.Same(t, upstream, err)
}
