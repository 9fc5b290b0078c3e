package book

import (
	"context"
)

// Repository defines the data access contract for the catalog.
type Repository interface {
	// Create inserts a new book and returns the generated ID.
	Create(ctx context.Context, book *Book) (int64, error)

	// FindByID returns a single book.
	// Returns ErrBookNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*Book, error)

	// List returns books matching the request filters, in insertion
	// order, offset/limit already normalized by the service.
	List(ctx context.Context, req ListBooksRequest) ([]Book, error)
}
