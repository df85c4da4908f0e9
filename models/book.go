// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// BookStatus is the reading progress state of a book record.
type BookStatus string

const (
	// BookStatusToRead marks a book the user plans to read. It is the default status.
	BookStatusToRead BookStatus = "To Read"
	// BookStatusReading marks a book the user is currently reading.
	BookStatusReading BookStatus = "Reading"
	// BookStatusCompleted marks a finished book.
	BookStatusCompleted BookStatus = "Completed"
	// BookStatusDropped marks a book the user abandoned.
	BookStatusDropped BookStatus = "Dropped"
	// BookStatusOnHold marks a paused book.
	BookStatusOnHold BookStatus = "On Hold"
)

// BookStatuses lists every valid [BookStatus] in display order.
var BookStatuses = []BookStatus{
	BookStatusToRead,
	BookStatusReading,
	BookStatusCompleted,
	BookStatusDropped,
	BookStatusOnHold,
}

// IsValid reports whether s is one of [BookStatuses].
func (s BookStatus) IsValid() bool {
	for _, status := range BookStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BookFormat is the physical or digital form of a book.
type BookFormat string

const (
	BookFormatPaperback BookFormat = "Paperback"
	BookFormatHardcover BookFormat = "Hardcover"
	BookFormatEbook     BookFormat = "Ebook"
	BookFormatAudiobook BookFormat = "Audiobook"
	// BookFormatOther is the default format.
	BookFormatOther BookFormat = "Other"
)

// BookFormats lists every valid [BookFormat].
var BookFormats = []BookFormat{
	BookFormatPaperback,
	BookFormatHardcover,
	BookFormatEbook,
	BookFormatAudiobook,
	BookFormatOther,
}

// IsValid reports whether f is one of [BookFormats].
func (f BookFormat) IsValid() bool {
	for _, format := range BookFormats {
		if f == format {
			return true
		}
	}
	return false
}

const (
	// MinBookRating is the lowest rating a user can give.
	MinBookRating = 0.0
	// MaxBookRating is the highest rating a user can give.
	MaxBookRating = 5.0
)

// Book is a single reading record owned by exactly one user.
//
// Optional attributes are pointers and serialize as JSON null when absent.
type Book struct {
	// ID is the unique identifier of the record (UUIDv7 string).
	ID string `json:"id"`

	// UserID is the owner of the record.
	// Always taken from the authenticated identity, never from the client.
	UserID string `json:"user"`

	Title       string `json:"title"`
	Author      string `json:"author"`
	PublishYear int    `json:"publishYear"`

	// CoverImage is an optional URL of the cover picture.
	CoverImage *string `json:"coverImage"`

	Status BookStatus `json:"status"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`

	// Rating is optional and bounded by [MinBookRating] and [MaxBookRating].
	Rating *float64 `json:"rating"`

	Notes *string `json:"notes"`

	Format BookFormat `json:"format"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookInput is the client payload for creating or replacing a book record.
//
// Every field is a pointer so that an absent attribute is distinguishable
// from its zero value. Unknown attributes such as "id" or "user" are
// ignored by the decoder.
type BookInput struct {
	Title       *string     `json:"title" validate:"omitempty,max=500"`
	Author      *string     `json:"author" validate:"omitempty,max=500"`
	PublishYear *int        `json:"publishYear" validate:"omitempty,min=-2147483648,max=2147483647"`
	CoverImage  *string     `json:"coverImage"`
	Status      *BookStatus `json:"status" validate:"omitempty,bookstatus"`
	StartDate   *time.Time  `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	CurrentPage *int        `json:"currentPage" validate:"omitempty,min=0,max=2147483647"`
	TotalPages  *int        `json:"totalPages" validate:"omitempty,min=0,max=2147483647"`
	Rating      *float64    `json:"rating" validate:"omitempty,min=0,max=5"`
	Notes       *string     `json:"notes"`
	Format      *BookFormat `json:"format" validate:"omitempty,bookformat"`
}

// MissingRequired reports whether any of the required attributes
// (title, author, publishYear, status, totalPages) is absent, empty or zero.
func (in BookInput) MissingRequired() bool {
	return blank(in.Title) ||
		blank(in.Author) ||
		in.PublishYear == nil || *in.PublishYear == 0 ||
		in.Status == nil || strings.TrimSpace(string(*in.Status)) == "" ||
		in.TotalPages == nil || *in.TotalPages == 0
}

// ToBook converts the input into a [Book] owned by userID, applying defaults
// for the attributes the client omitted: status "To Read", format "Other",
// currentPage 0 and nil for the remaining optionals.
//
// ID and timestamps are left empty; the service and the store fill them.
func (in BookInput) ToBook(userID string) Book {
	book := Book{
		UserID:      userID,
		Title:       strings.TrimSpace(deref(in.Title)),
		Author:      strings.TrimSpace(deref(in.Author)),
		PublishYear: deref(in.PublishYear),
		CoverImage:  in.CoverImage,
		Status:      BookStatusToRead,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CurrentPage: deref(in.CurrentPage),
		TotalPages:  deref(in.TotalPages),
		Rating:      in.Rating,
		Notes:       in.Notes,
		Format:      BookFormatOther,
	}

	if in.Status != nil && *in.Status != "" {
		book.Status = *in.Status
	}
	if in.Format != nil && *in.Format != "" {
		book.Format = *in.Format
	}

	return book
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
