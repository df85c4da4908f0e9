package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a new account collides with an
	// existing one on a unique attribute.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEmailAlreadyExists is returned when the email is already registered.
	// It wraps [ErrUserAlreadyExists].
	ErrEmailAlreadyExists = fmt.Errorf("email already exists: %w", ErrUserAlreadyExists)

	// ErrUsernameAlreadyExists is returned when the username is already taken.
	// It wraps [ErrUserAlreadyExists].
	ErrUsernameAlreadyExists = fmt.Errorf("username already exists: %w", ErrUserAlreadyExists)

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when no book matches both the requested id
	// and the owner. A book owned by someone else is indistinguishable from a
	// missing one.
	ErrBookNotFound = errors.New("book not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without result rows fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
