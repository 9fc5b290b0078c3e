package review

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SubmitReviewRequest - POST /books/:bookId/reviews payload.
// Rating is a pointer so an absent rating can be told apart from a
// legitimate rating of 0.
type SubmitReviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment string   `json:"comment"`
}

func (r SubmitReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.NotNil.Error("rating is required"),
			validation.Min(0.0).Error("rating must be between 0 and 10"),
			validation.Max(10.0).Error("rating must be between 0 and 10"),
		),
		validation.Field(&r.Comment,
			validation.By(nonBlank("comment is required")),
		),
	)
}

// UpdateReviewRequest - PUT /books/:bookId/reviews/:reviewId payload.
// Same rules as submit: rating range and comment non-emptiness are both
// re-checked on update.
type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment string   `json:"comment"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.NotNil.Error("rating is required"),
			validation.Min(0.0).Error("rating must be between 0 and 10"),
			validation.Max(10.0).Error("rating must be between 0 and 10"),
		),
		validation.Field(&r.Comment,
			validation.By(nonBlank("comment is required")),
		),
	)
}

// nonBlank rejects strings that are empty after trimming whitespace.
func nonBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
