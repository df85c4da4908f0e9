package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/migrations"
)

// DB is the shared connection pool used by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	db.logger.Info().Msg("applying database migrations")
	return migrations.Migrate(db.DB)
}

// logFailure logs a failed database call with its classification, so
// transient outages can be told apart from query bugs in the logs.
func (db *DB) logFailure(ctx context.Context, fn string, err error) {
	retryable := false
	if db.errorClassificator != nil {
		retryable = db.errorClassificator.Classify(err) == Retryable
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("pg_code", postgresError(err)).
		Bool("retryable", retryable).
		Msg("database call failed")
}
