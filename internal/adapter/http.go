package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-book-tracker/internal/config"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	apiKey string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the HTTP implementation of [CatalogAdapter].
// It validates adapterCfg.CatalogURL and configures the underlying client
// with it and with adapterCfg.RequestTimeout.
//
// Returns an error if the catalog URL is empty or not an absolute URL.
func NewHTTPCatalogAdapter(adapterCfg config.Adapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CatalogURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		apiKey: strings.TrimSpace(adapterCfg.CatalogAPIKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [CatalogAdapter]. It sends GET <catalog>?q=<term>
// (plus key=<api key> when configured).
func (h *httpCatalogAdapter) Search(ctx context.Context, term string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", term)
	if h.apiKey != "" {
		req.SetQueryParam("key", h.apiKey)
	}

	resp, err := req.Get("")
	if err != nil {
		log.Err(err).Str("func", "*httpCatalogAdapter.Search").Msg("catalog request failed")
		return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Str("func", "*httpCatalogAdapter.Search").
			Int("status", resp.StatusCode()).
			Msg("catalog responded with error status")
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}
