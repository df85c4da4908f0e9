package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored row with
// the server-assigned timestamps.
//
// Error handling:
//   - unique_violation on users_email_unique    → [ErrEmailAlreadyExists]
//   - unique_violation on users_username_unique → [ErrUsernameAlreadyExists]
//   - unique_violation on anything else         → [ErrUserAlreadyExists]
//   - any other driver-level error              → wrapped [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, createUser, user.ID, user.Username, user.Email, user.Password).
		Scan(&created.ID, &created.Username, &created.Email, &created.Password, &created.CreatedAt, &created.UpdatedAt)
	if err == nil {
		return created, nil
	}

	if postgresError(err) == pgerrcode.UniqueViolation {
		log.Warn().Str("func", "*userRepository.CreateUser").
			Str("constraint", postgresConstraint(err)).
			Msg("user already exists")

		switch postgresConstraint(err) {
		case usersEmailUniqueConstraint:
			return models.User{}, ErrEmailAlreadyExists
		case usersUsernameUniqueConstraint:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, ErrUserAlreadyExists
		}
	}

	r.db.logFailure(ctx, "*userRepository.CreateUser", err)
	return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// FindUserByEmail retrieves the user whose email matches. The password
// digest is included so that the caller can verify credentials.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg string) (models.User, error) {
	var found models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&found.ID, &found.Username, &found.Email, &found.Password, &found.CreatedAt, &found.UpdatedAt)

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows),
		postgresError(err) == pgerrcode.NoDataFound,
		postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.User{}, ErrNoUserWasFound
	default:
		r.db.logFailure(ctx, fn, err)
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
