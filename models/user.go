package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Username is the unique public name of the user.
	// Stored trimmed, at least 3 characters long.
	Username string `json:"username"`

	// Email is the unique login identifier of the user.
	// Stored trimmed and lowercased.
	Email string `json:"email"`

	// Password holds the bcrypt digest once the user is persisted.
	// Plaintext only lives here between request decoding and hashing.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last change of the account.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// WithoutPassword returns a copy of the user with the password digest cleared.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email,bookemail"`
	Password string `json:"password" validate:"required,min=6,bcryptlen"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
