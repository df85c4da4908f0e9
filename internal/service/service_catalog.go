package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
)

type catalogService struct {
	catalog adapter.CatalogAdapter

	logger *logger.Logger
}

func NewCatalogService(catalog adapter.CatalogAdapter, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// SearchCatalog relays term to the external catalog. Errors of the adapter
// (*adapter.UpstreamStatusError, adapter.ErrNoResponse) are returned as is.
func (c *catalogService) SearchCatalog(ctx context.Context, term string) (json.RawMessage, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	return c.catalog.Search(ctx, term)
}
