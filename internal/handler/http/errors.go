// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the access guard to describe why a request was
// rejected. They are logged; clients only see the fixed messages below.
var (
	// ErrNoToken is returned when the "Authorization" header is absent or
	// does not carry a "Bearer <token>" value.
	ErrNoToken = errors.New("no bearer token in `Authorization` header")

	// ErrUserFromTokenNotFound is returned when a valid token references a
	// user that no longer exists.
	ErrUserFromTokenNotFound = errors.New("user referenced by token not found")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Client-facing messages of the access guard.
const (
	msgNoToken      = "Not authorized, no token"
	msgTokenFailed  = "Not authorized, token failed"
	msgUserNotFound = "Not authorized, user not found"
)
