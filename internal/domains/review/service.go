package review

import (
	"context"
)

// Service defines the review integrity contract. The state machine per
// (book, user) pair is: absent -> present (Submit), present -> present
// (Update, owner only), present -> absent (Delete, owner only).
type Service interface {
	// Submit creates a review on behalf of the authenticated caller.
	// Returns ErrAlreadyReviewed when the pair already has one.
	Submit(ctx context.Context, bookID, userID int64, req SubmitReviewRequest) (*Review, error)

	// Update overwrites rating/comment.
	// Returns ErrReviewNotFound / ErrNotOwner.
	Update(ctx context.Context, reviewID, userID int64, req UpdateReviewRequest) error

	// Delete removes the review.
	// Returns ErrReviewNotFound / ErrNotOwner.
	Delete(ctx context.Context, reviewID, userID int64) error
}
