// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the external book
// catalog (a Google Books compatible volumes search API).
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from the protocol. Non-2xx upstream answers are reported as
// [*UpstreamStatusError] so that callers can relay the status and body, and
// transport failures wrap [ErrNoResponse].
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter looks up book metadata in the external catalog.
type CatalogAdapter interface {
	// Search sends term as the catalog query and returns the upstream
	// payload unchanged. Returns [*UpstreamStatusError] when the catalog
	// answers with a non-2xx status and an error wrapping [ErrNoResponse]
	// when no answer was received at all.
	Search(ctx context.Context, term string) (json.RawMessage, error)
}
