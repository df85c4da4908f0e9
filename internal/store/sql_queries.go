package store

import (
	"strings"

	"github.com/MKhiriev/go-book-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, username, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password, created_at, updated_at;`

	findUserByEmail = `SELECT id, username, email, password, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password, created_at, updated_at
    FROM users
    WHERE id = $1;`

	getBook = `SELECT id, user_id, title, author, publish_year, cover_image, status, start_date, end_date,
        current_page, total_pages, rating, notes, format, created_at, updated_at
    FROM books
    WHERE id = $1 AND user_id = $2;`

	deleteBook = `DELETE FROM books
    WHERE id = $1 AND user_id = $2;`
)

// Unique constraints of the users table, see migrations.
const (
	usersEmailUniqueConstraint    = "users_email_unique"
	usersUsernameUniqueConstraint = "users_username_unique"
)

const booksTable = "books"

// bookColumns is the select list every book query returns, in scan order.
var bookColumns = []string{
	"id",
	"user_id",
	"title",
	"author",
	"publish_year",
	"cover_image",
	"status",
	"start_date",
	"end_date",
	"current_page",
	"total_pages",
	"rating",
	"notes",
	"format",
	"created_at",
	"updated_at",
}

// bookSortColumns maps sortBy values (JSON attribute names) to columns.
var bookSortColumns = map[string]string{
	"title":       "title",
	"author":      "author",
	"publishYear": "publish_year",
	"status":      "status",
	"format":      "format",
	"rating":      "rating",
	"currentPage": "current_page",
	"totalPages":  "total_pages",
	"startDate":   "start_date",
	"endDate":     "end_date",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper escapes LIKE metacharacters so that a search term is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildInsertBookQuery builds an INSERT that returns the stored row.
func buildInsertBookQuery(book models.Book) (string, []any, error) {
	return psql.Insert(booksTable).
		Columns(
			"id",
			"user_id",
			"title",
			"author",
			"publish_year",
			"cover_image",
			"status",
			"start_date",
			"end_date",
			"current_page",
			"total_pages",
			"rating",
			"notes",
			"format",
		).
		Values(
			book.ID,
			book.UserID,
			book.Title,
			book.Author,
			book.PublishYear,
			book.CoverImage,
			string(book.Status),
			book.StartDate,
			book.EndDate,
			book.CurrentPage,
			book.TotalPages,
			book.Rating,
			book.Notes,
			string(book.Format),
		).
		Suffix("RETURNING " + strings.Join(bookColumns, ", ")).
		ToSql()
}

// buildListBooksQuery builds the owner-scoped SELECT with the optional
// search, filters and ordering of query.
func buildListBooksQuery(userID string, query models.BookQuery) (string, []any, error) {
	builder := psql.Select(bookColumns...).
		From(booksTable).
		Where(sq.Eq{"user_id": userID})

	if query.Search != "" {
		pattern := "%" + likeEscaper.Replace(query.Search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}
	if query.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*query.Status)})
	}
	if query.Format != nil {
		builder = builder.Where(sq.Eq{"format": string(*query.Format)})
	}
	if query.MinRating != nil {
		builder = builder.Where(sq.GtOrEq{"rating": *query.MinRating})
	}
	if query.MaxRating != nil {
		builder = builder.Where(sq.LtOrEq{"rating": *query.MaxRating})
	}

	return builder.OrderBy(bookOrderBy(query)...).ToSql()
}

// bookOrderBy returns the ORDER BY clauses of a list query. Absent values
// sort as the lowest ones and ties are broken by id in the same direction.
func bookOrderBy(query models.BookQuery) []string {
	column, ok := bookSortColumns[query.SortBy]
	if !ok {
		return []string{"created_at DESC", "id DESC"}
	}

	if query.SortOrder == models.SortDesc {
		return []string{column + " DESC NULLS LAST", "id DESC"}
	}
	return []string{column + " ASC NULLS FIRST", "id ASC"}
}

// buildUpdateBookQuery builds a full replace of the mutable attributes of
// the book matching book.ID and book.UserID.
func buildUpdateBookQuery(book models.Book) (string, []any, error) {
	return psql.Update(booksTable).
		SetMap(map[string]any{
			"title":        book.Title,
			"author":       book.Author,
			"publish_year": book.PublishYear,
			"cover_image":  book.CoverImage,
			"status":       string(book.Status),
			"start_date":   book.StartDate,
			"end_date":     book.EndDate,
			"current_page": book.CurrentPage,
			"total_pages":  book.TotalPages,
			"rating":       book.Rating,
			"notes":        book.Notes,
			"format":       string(book.Format),
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": book.ID, "user_id": book.UserID}).
		Suffix("RETURNING " + strings.Join(bookColumns, ", ")).
		ToSql()
}
