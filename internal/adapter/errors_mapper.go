package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &UpstreamStatusError{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
}
