package service

import (
	"context"
	"strings"
	"time"

	"bookreview-backend/internal/domains/review"
)

// reviewService implements review.Service.
type reviewService struct {
	repo review.Repository
}

// NewReviewService creates the service with its repository injected.
func NewReviewService(repo review.Repository) review.Service {
	return &reviewService{repo: repo}
}

// Submit creates a review, enforcing the one-review-per-user-per-book rule.
func (s *reviewService) Submit(ctx context.Context, bookID, userID int64, req review.SubmitReviewRequest) (*review.Review, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUSINESS RULE: one review per (book, user) pair
	// Check-then-insert; the UNIQUE(book_id, user_id) constraint is the
	// backstop for two concurrent submissions both passing this check.
	exists, err := s.repo.ExistsByBookAndUser(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, review.ErrAlreadyReviewed
	}

	// 3. PERSIST
	now := time.Now()
	rev := &review.Review{
		BookID:    bookID,
		UserID:    userID,
		Rating:    *req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, rev)
	if err != nil {
		return nil, err
	}
	rev.ID = id

	return rev, nil
}

// Update overwrites rating/comment; only the owner may do so.
func (s *reviewService) Update(ctx context.Context, reviewID, userID int64, req review.UpdateReviewRequest) error {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return err
	}

	// 2. OWNERSHIP CHECK (NotFound before Forbidden)
	rev, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !rev.IsOwnedBy(userID) {
		return review.ErrNotOwner
	}

	// 3. OVERWRITE
	return s.repo.Update(ctx, reviewID, *req.Rating, strings.TrimSpace(req.Comment))
}

// Delete removes a review; only the owner may do so.
func (s *reviewService) Delete(ctx context.Context, reviewID, userID int64) error {
	rev, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !rev.IsOwnedBy(userID) {
		return review.ErrNotOwner
	}

	return s.repo.Delete(ctx, reviewID)
}
