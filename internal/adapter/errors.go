package adapter

import (
	"errors"
	"fmt"
)

// ErrNoResponse is returned when the catalog could not be reached or did
// not answer before the request timeout.
var ErrNoResponse = errors.New("no response received from catalog service")

// UpstreamStatusError carries a non-2xx catalog answer so it can be relayed
// to the client as is.
type UpstreamStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("catalog responded with http %d: %s", e.StatusCode, e.Body)
}
