// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violated group is reported; the returned error matches the
// corresponding sentinel from errors.go with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs))
	}

	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		errs = append(errs, fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs))
	}

	if len(cfg.App.TokenSignKeys) == 0 {
		errs = append(errs, fmt.Errorf("%w: empty token key ring", ErrInvalidAppConfigs))
	}
	for i, key := range cfg.App.TokenSignKeys {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Errorf("%w: token key #%d is empty", ErrInvalidAppConfigs, i))
		}
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if cfg.Adapter.CatalogURL == "" {
		errs = append(errs, fmt.Errorf("%w: empty catalog URL", ErrInvalidAdapterConfigs))
	}
	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative catalog request timeout", ErrInvalidAdapterConfigs))
	}

	return errors.Join(errs...)
}
