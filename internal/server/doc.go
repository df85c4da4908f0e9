// Package server runs the HTTP server of the book tracker and stops it
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
