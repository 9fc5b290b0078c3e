package review

import (
	"time"
)

// Review is the domain entity, mapped 1:1 to the reviews table.
// At most one review exists per (book, user) pair; only the owning
// user may update or delete it.
type Review struct {
	ID     int64 `db:"id" json:"id"`
	BookID int64 `db:"book_id" json:"book_id"`
	UserID int64 `db:"user_id" json:"user_id"`

	Rating  float64 `db:"rating" json:"rating"` // 0-10 inclusive
	Comment string  `db:"comment" json:"comment"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsOwnedBy reports whether userID is the review's owner - the only
// identity allowed to mutate or delete it.
func (r *Review) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// ReviewWithUser is a review joined with the reviewing user's username,
// as returned on the book detail page.
type ReviewWithUser struct {
	ID       int64   `json:"id"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Username string  `json:"username"`
}
