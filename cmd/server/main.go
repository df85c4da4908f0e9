package main

import (
	"context"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/config"
	"github.com/MKhiriev/go-book-tracker/internal/handler"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/server"
	"github.com/MKhiriev/go-book-tracker/internal/service"
	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/models"
)

// Set with -ldflags "-X main.buildVersion=..." at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("book-tracker-server")

	buildInfo := newBuildInfo()
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting book tracker")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog adapter")
	}

	services, err := service.NewServices(storages, catalog, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
