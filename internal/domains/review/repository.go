package review

import (
	"context"
)

// Repository defines the data access contract for reviews.
// Implementations map the (book_id, user_id) unique violation to
// ErrAlreadyReviewed.
type Repository interface {
	// Create inserts a new review and returns the generated ID.
	// Returns ErrAlreadyReviewed if a review by the same user for the
	// same book already exists.
	Create(ctx context.Context, review *Review) (int64, error)

	// FindByID returns a single review.
	// Returns ErrReviewNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*Review, error)

	// ExistsByBookAndUser reports whether the (book, user) pair already
	// has a review.
	ExistsByBookAndUser(ctx context.Context, bookID, userID int64) (bool, error)

	// Update overwrites rating and comment of an existing review.
	Update(ctx context.Context, id int64, rating float64, comment string) error

	// Delete removes a review.
	Delete(ctx context.Context, id int64) error

	// ListByBook returns a page of reviews for a book joined with each
	// reviewer's username, most recently created first.
	ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]ReviewWithUser, error)

	// AverageRating returns the mean rating for a book, or nil when the
	// book has no reviews.
	AverageRating(ctx context.Context, bookID int64) (*float64, error)
}
