package service

import (
	"fmt"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/config"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	BookService    BookService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, catalog adapter.CatalogAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	bookService := NewBookValidationService().Wrap(NewBookService(storages.BookRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		BookService:    bookService,
		CatalogService: NewCatalogService(catalog, logger),
		AppInfoService: appInfoService,
	}, nil
}
