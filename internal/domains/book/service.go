package book

import (
	"context"
)

// Service defines the catalog query engine contract.
type Service interface {
	// AddBook creates a catalog entry; all three fields must be non-empty.
	AddBook(ctx context.Context, req CreateBookRequest) (*Book, error)

	// ListBooks answers the filtered, paginated catalog query.
	ListBooks(ctx context.Context, req ListBooksRequest) ([]Book, error)

	// GetBookDetail returns one book with its average rating and a page
	// of reviews (newest first), each joined with the reviewer's username.
	// Returns ErrBookNotFound when the book does not exist.
	GetBookDetail(ctx context.Context, bookID int64, page, limit int) (*BookDetailResponse, error)
}
