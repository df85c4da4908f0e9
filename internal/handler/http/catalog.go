package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-tracker/internal/adapter"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
)

// searchCatalog proxies GET /books/external-search?q= to the external
// catalog. A successful payload is relayed byte for byte; an upstream error
// keeps its status and wraps its body into {"message": ...}.
func (h *Handler) searchCatalog(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.CatalogService.SearchCatalog(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		var upstreamErr *adapter.UpstreamStatusError
		if errors.As(err, &upstreamErr) {
			logger.FromRequest(r).Warn().Int("upstream_status", upstreamErr.StatusCode).Msg("catalog responded with error")
			utils.WriteJSON(w, upstreamMessage(upstreamErr.Body), upstreamErr.StatusCode)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, payload, http.StatusOK)
}

// upstreamMessage embeds body as JSON when it is valid JSON, as a string otherwise.
func upstreamMessage(body []byte) map[string]any {
	if json.Valid(body) {
		return map[string]any{"message": json.RawMessage(body)}
	}
	return map[string]any{"message": string(body)}
}
