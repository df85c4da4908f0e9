package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of a request payload.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrInvalidCredentials is returned by Login for an unknown email and a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrEmptySearchTerm is returned for a blank catalog search term.
	ErrEmptySearchTerm = errors.New("empty search term")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
