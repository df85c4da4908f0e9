package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields
// that none of the sources set.
const (
	DefaultTokenIssuer           = "go-book-tracker"
	DefaultTokenDuration         = time.Hour
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultCatalogURL            = "https://www.googleapis.com/books/v1/volumes"
	DefaultCatalogRequestTimeout = 10 * time.Second
	DefaultVersion               = "dev"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if cfg.Adapter.CatalogURL == "" {
		cfg.Adapter.CatalogURL = DefaultCatalogURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultCatalogRequestTimeout
	}
}
