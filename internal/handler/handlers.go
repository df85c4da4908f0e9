package handler

import (
	"github.com/MKhiriev/go-book-tracker/internal/config"
	"github.com/MKhiriev/go-book-tracker/internal/handler/http"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/service"
)

// Handlers groups the transport handlers the server mounts.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds a handler for every transport with a configured address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
