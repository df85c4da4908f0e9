// Package http implements the REST transport of the book tracker.
//
// Routes are wired with chi. Requests pass through trace id propagation,
// access logging, Prometheus metrics, panic recovery, CORS and gzip before
// reaching a handler. The /books subtree additionally requires a bearer
// token. Handlers decode the request, call the service layer and map
// service errors to status codes in one place (errors_mapper.go).
package http
