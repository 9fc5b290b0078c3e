package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("review already submitted for this book")
	ErrNotOwner        = errors.New("only the review's owner may modify it")
	ErrUnknownBook     = errors.New("book does not exist")
)
