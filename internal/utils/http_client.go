package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// A positive timeout limits every request made through the client, so a
// hanging upstream cannot hold a handler indefinitely. Retries are disabled.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://www.googleapis.com/books/v1/volumes", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).SetQueryParam("q", term).Get("")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
