// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-tracker/internal/config"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL, apiKey string) *httpCatalogAdapter {
	t.Helper()
	adapterCfg := config.Adapter{CatalogURL: serverURL, CatalogAPIKey: apiKey, RequestTimeout: time.Second}

	a, err := NewHTTPCatalogAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCatalogAdapter)
}

func TestNewHTTPCatalogAdapter_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "no-scheme", "://broken"} {
		_, err := NewHTTPCatalogAdapter(config.Adapter{CatalogURL: raw}, logger.Nop())
		assert.Error(t, err, "url %q", raw)
	}
}

func TestSearch_Success(t *testing.T) {
	payload := `{"kind":"books#volumes","totalItems":1,"items":[{"id":"abc"}]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/books/v1/volumes", r.URL.Path)
		assert.Equal(t, "dune herbert", r.URL.Query().Get("q"))
		assert.Empty(t, r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/books/v1/volumes", "")
	got, err := a.Search(context.Background(), "dune herbert")

	require.NoError(t, err)
	assert.JSONEq(t, payload, string(got))
}

func TestSearch_SendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "secret")
	_, err := a.Search(context.Background(), "isbn:9780441013593")
	require.NoError(t, err)
}

func TestSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Search(context.Background(), "dune")

	var upstream *UpstreamStatusError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.JSONEq(t, `{"error":{"code":429,"message":"quota"}}`, string(upstream.Body))
	assert.Contains(t, upstream.Error(), "429")
}

func TestSearch_NoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, "")
	_, err := a.Search(context.Background(), "dune")

	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestSearch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPCatalogAdapter(config.Adapter{CatalogURL: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Search(context.Background(), "dune")
	assert.ErrorIs(t, err, ErrNoResponse)
}
