package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-tracker/internal/config"
	"github.com/MKhiriev/go-book-tracker/internal/logger"
	"github.com/MKhiriev/go-book-tracker/internal/store"
	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/internal/validators"
	"github.com/MKhiriev/go-book-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	hasher    *utils.PasswordHasher
	ids       *utils.UUIDGenerator

	// tokenSignKeys is the HMAC key ring, newest first. The first key signs,
	// all of them verify.
	tokenSignKeys []string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hasher:         utils.NewPasswordHasher(cfg.PasswordHashCost),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKeys:  cfg.TokenSignKeys,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is trimmed and the email trimmed and lowercased before the
// payload is validated. The password is hashed here and nowhere else, right
// before the record is persisted.
//
// Returns the persisted user without its password digest or:
//   - ErrInvalidDataProvided (wrapping *validators.ValidationError) for an invalid payload.
//   - store.ErrEmailAlreadyExists or store.ErrUsernameAlreadyExists on a collision.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Str("email", req.Email).Err(err).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", req.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		ID:       a.ids.Generate(),
		Username: req.Username,
		Email:    req.Email,
		Password: digest,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.WithoutPassword(), nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that callers cannot probe which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = a.hasher.Compare(foundUser.Password, req.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("password comparison failed")
		return models.User{}, err
	}

	return foundUser.WithoutPassword(), nil
}

// GetUserByID returns the account with the given id without its password
// digest, or store.ErrNoUserWasFound.
func (a *authService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	return user.WithoutPassword(), nil
}

// CreateToken issues a signed JWT for the given user with the newest key of
// the ring.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if len(a.tokenSignKeys) == 0 {
		return models.Token{}, fmt.Errorf("%w: empty token key ring", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKeys[0])
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string against the whole key ring.
//
// Any validation failure (expired, wrong issuer, unknown key, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors. The user store is not consulted.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKeys, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
