package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidBookQuery is returned by [ParseBookQuery] when a list
// parameter has a value outside its domain.
var ErrInvalidBookQuery = errors.New("invalid book query")

// SortOrder is the direction of the list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// BookSortFields is the allow-list of attributes a book list can be sorted by.
// Keys are the JSON attribute names accepted in the "sortBy" parameter.
var BookSortFields = map[string]struct{}{
	"title":       {},
	"author":      {},
	"publishYear": {},
	"status":      {},
	"format":      {},
	"rating":      {},
	"currentPage": {},
	"totalPages":  {},
	"startDate":   {},
	"endDate":     {},
	"createdAt":   {},
	"updatedAt":   {},
}

// BookQuery holds the optional filter, search and sort criteria of a list request.
// The owner is never part of the query; it is supplied separately from the
// authenticated identity.
type BookQuery struct {
	// Search matches title or author case-insensitively as a substring.
	Search string

	Status *BookStatus
	Format *BookFormat

	// MinRating and MaxRating are inclusive bounds.
	MinRating *float64
	MaxRating *float64

	// SortBy is an entry of [BookSortFields]; empty means newest first.
	SortBy    string
	SortOrder SortOrder
}

// ParseBookQuery builds a [BookQuery] from URL query parameters
// (search, status, format, minRating, maxRating, sortBy, sortOrder).
// Empty parameters are treated as absent.
func ParseBookQuery(values url.Values) (BookQuery, error) {
	query := BookQuery{
		Search:    strings.TrimSpace(values.Get("search")),
		SortOrder: SortAsc,
	}

	if raw := values.Get("status"); raw != "" {
		status := BookStatus(raw)
		if !status.IsValid() {
			return BookQuery{}, fmt.Errorf("%w: unknown status %q", ErrInvalidBookQuery, raw)
		}
		query.Status = &status
	}

	if raw := values.Get("format"); raw != "" {
		format := BookFormat(raw)
		if !format.IsValid() {
			return BookQuery{}, fmt.Errorf("%w: unknown format %q", ErrInvalidBookQuery, raw)
		}
		query.Format = &format
	}

	var err error
	if query.MinRating, err = parseRating(values, "minRating"); err != nil {
		return BookQuery{}, err
	}
	if query.MaxRating, err = parseRating(values, "maxRating"); err != nil {
		return BookQuery{}, err
	}

	if raw := values.Get("sortBy"); raw != "" {
		if _, ok := BookSortFields[raw]; !ok {
			return BookQuery{}, fmt.Errorf("%w: cannot sort by %q", ErrInvalidBookQuery, raw)
		}
		query.SortBy = raw
	}

	if raw := values.Get("sortOrder"); raw != "" {
		switch order := SortOrder(strings.ToLower(raw)); order {
		case SortAsc, SortDesc:
			query.SortOrder = order
		default:
			return BookQuery{}, fmt.Errorf("%w: sortOrder must be asc or desc", ErrInvalidBookQuery)
		}
	}

	return query, nil
}

func parseRating(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidBookQuery, key)
	}

	return &rating, nil
}
