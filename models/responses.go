package models

// UserResponse is returned by the register and login endpoints.
// It carries the public identity and a freshly issued session token.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// ListBooksResponse is the body of GET /books.
type ListBooksResponse struct {
	// Count is the number of entries in Data.
	Count int `json:"count"`

	// Data is never nil so that an empty result encodes as [].
	Data []Book `json:"data"`
}

// NewListBooksResponse wraps books into a [ListBooksResponse].
func NewListBooksResponse(books []Book) ListBooksResponse {
	if books == nil {
		books = []Book{}
	}
	return ListBooksResponse{Count: len(books), Data: books}
}

// MessageResponse is a body consisting of a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// BookUpdatedResponse is the body of PUT /books/{id}.
type BookUpdatedResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

// FieldError describes a single invalid attribute of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// Errors is present only for field-level validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
