// Package config provides configuration loading, merging, and validation
// facilities for the book tracker service.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by all sources receive the defaults from defaults.go,
// after which the result is validated. The main entry point is
// [GetStructuredConfig].
package config
