package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bookreview-backend/internal/domains/book"
	"bookreview-backend/internal/domains/review"
	"bookreview-backend/internal/shared/utils"
)

// NoRatingsSentinel is rendered when a book has no reviews yet.
const NoRatingsSentinel = "No ratings yet"

// bookService implements book.Service. It reads reviews through the
// review repository to build the detail page (cross-domain read only -
// review writes stay in the review service).
type bookService struct {
	repo       book.Repository
	reviewRepo review.Repository
}

// NewBookService creates the service with its dependencies injected.
func NewBookService(repo book.Repository, reviewRepo review.Repository) book.Service {
	return &bookService{
		repo:       repo,
		reviewRepo: reviewRepo,
	}
}

// AddBook creates a catalog entry.
func (s *bookService) AddBook(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := &book.Book{
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		CreatedAt: time.Now(),
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id

	return b, nil
}

// ListBooks answers the filtered, paginated catalog query.
func (s *bookService) ListBooks(ctx context.Context, req book.ListBooksRequest) ([]book.Book, error) {
	req.Page, req.Limit = utils.NormalizePagination(req.Page, req.Limit, book.DefaultListLimit, book.MaxLimit)
	return s.repo.List(ctx, req)
}

// GetBookDetail returns the book, its average rating, and a page of
// reviews joined with usernames, newest first.
func (s *bookService) GetBookDetail(ctx context.Context, bookID int64, page, limit int) (*book.BookDetailResponse, error) {
	page, limit = utils.NormalizePagination(page, limit, book.DefaultReviewLimit, book.MaxLimit)

	b, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	avg, err := s.reviewRepo.AverageRating(ctx, bookID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByBook(ctx, bookID, limit, utils.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	return &book.BookDetailResponse{
		Book:          b,
		AverageRating: formatAverage(avg),
		Reviews:       reviews,
	}, nil
}

// formatAverage renders the mean rating to exactly one decimal place on
// a 10-point scale, e.g. "7.0/10".
func formatAverage(avg *float64) string {
	if avg == nil {
		return NoRatingsSentinel
	}
	return decimal.NewFromFloat(*avg).StringFixed(1) + "/10"
}
