package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := minimalValidConfig()
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "empty DSN", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "  " }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "empty key ring", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKeys = nil }, wantErr: ErrInvalidAppConfigs},
		{name: "blank key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKeys = []string{"k", " "} }, wantErr: ErrInvalidAppConfigs},
		{name: "negative token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -1 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = bcrypt.MinCost - 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too high", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = bcrypt.MaxCost + 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty catalog url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.CatalogURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative catalog timeout", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = -1 }, wantErr: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
