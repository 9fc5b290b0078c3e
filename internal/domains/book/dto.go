package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/domains/review"
)

// Pagination defaults. Limits are capped so a caller cannot request an
// unbounded result set.
const (
	DefaultListLimit   = 10
	DefaultReviewLimit = 5
	MaxLimit           = 100
)

// CreateBookRequest - POST /books payload
type CreateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Genre  string `json:"genre" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Genre, validation.Required.Error("genre is required")),
	)
}

// ListBooksRequest carries the catalog filters. Each filter is optional;
// present filters combine with AND.
type ListBooksRequest struct {
	Author string // case-sensitive substring match
	Genre  string // case-sensitive substring match
	Search string // case-insensitive substring over title OR author
	Page   int
	Limit  int
}

// BookDetailResponse - GET /books/:id payload.
// AverageRating is rendered to one decimal on a 10-point scale
// ("7.0/10"), or the sentinel "No ratings yet" when no reviews exist.
type BookDetailResponse struct {
	Book          *Book                   `json:"book"`
	AverageRating string                  `json:"averageRating"`
	Reviews       []review.ReviewWithUser `json:"reviews"`
}
