package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/domains/review"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/pkg/logger"
)

type ReviewHandler struct {
	reviewService review.Service
}

func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// SubmitReview creates a review for a book
// POST /books/:bookId/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	// Step 1: Resolve caller identity (set by the auth guard)
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	// Step 2: Parse book ID
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	// Step 3: Bind request body
	var req review.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// Step 4: Call service
	rev, err := h.reviewService.Submit(c.Request.Context(), bookID, identity.UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// Step 5: Return success
	response.Success(c, http.StatusCreated, rev)
}

// UpdateReview overwrites the caller's own review
// PUT /books/:bookId/reviews/:reviewId
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid review ID")
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.reviewService.Update(c.Request.Context(), reviewID, identity.UserID, req); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "review updated successfully"})
}

// DeleteReview removes the caller's own review
// DELETE /books/:bookId/reviews/:reviewId
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid review ID")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), reviewID, identity.UserID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "review deleted successfully"})
}

// respondError maps domain errors to HTTP status codes.
func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.Is(err, review.ErrAlreadyReviewed):
		response.ErrorResponse(c, http.StatusBadRequest, "CONFLICT", "you have already submitted a review for this book")
	case errors.Is(err, review.ErrUnknownBook):
		response.BadRequest(c, "book does not exist")
	case errors.Is(err, review.ErrReviewNotFound):
		response.NotFound(c, "review not found")
	case errors.Is(err, review.ErrNotOwner):
		response.Forbidden(c, "you can only modify your own review")
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("review operation failed", err)
		response.InternalServerError(c, "server error")
	}
}
