package store

import "github.com/MKhiriev/go-book-tracker/internal/logger"

// Storages groups the repositories the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository
}

// NewStorages builds every repository on top of a single connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
	}
}
