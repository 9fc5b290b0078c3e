package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview-backend/internal/domains/review"
)

// -------- test fakes --------

type fakeReviewRepo struct {
	reviews map[int64]*review.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[int64]*review.Review{}, nextID: 1}
}

func (f *fakeReviewRepo) Create(ctx context.Context, rev *review.Review) (int64, error) {
	for _, existing := range f.reviews {
		if existing.BookID == rev.BookID && existing.UserID == rev.UserID {
			return 0, review.ErrAlreadyReviewed
		}
	}
	id := f.nextID
	f.nextID++
	stored := *rev
	stored.ID = id
	f.reviews[id] = &stored
	return id, nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*review.Review, error) {
	rev, ok := f.reviews[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	return rev, nil
}

func (f *fakeReviewRepo) ExistsByBookAndUser(ctx context.Context, bookID, userID int64) (bool, error) {
	for _, rev := range f.reviews {
		if rev.BookID == bookID && rev.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, id int64, rating float64, comment string) error {
	rev, ok := f.reviews[id]
	if !ok {
		return review.ErrReviewNotFound
	}
	rev.Rating = rating
	rev.Comment = comment
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return review.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]review.ReviewWithUser, error) {
	return nil, nil
}

func (f *fakeReviewRepo) AverageRating(ctx context.Context, bookID int64) (*float64, error) {
	return nil, nil
}

func ratingPtr(v float64) *float64 { return &v }

// -------- tests --------

func TestSubmit_RatingBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		for _, rating := range []float64{0, 10, 7.5} {
			svc := NewReviewService(newFakeReviewRepo())
			rev, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
				Rating:  ratingPtr(rating),
				Comment: "great",
			})
			require.NoError(t, err, "rating %v", rating)
			assert.Equal(t, rating, rev.Rating)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewReviewService(newFakeReviewRepo())
		for _, rating := range []float64{-1, 11, -0.1, 10.1} {
			_, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
				Rating:  ratingPtr(rating),
				Comment: "great",
			})
			assert.Error(t, err, "rating %v", rating)
		}
	})
}

func TestSubmit_CommentRequired(t *testing.T) {
	t.Parallel()

	svc := NewReviewService(newFakeReviewRepo())

	for _, comment := range []string{"", "   ", "\t\n"} {
		_, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
			Rating:  ratingPtr(5),
			Comment: comment,
		})
		assert.Error(t, err, "comment %q", comment)
	}
}

func TestSubmit_MissingRating(t *testing.T) {
	t.Parallel()

	svc := NewReviewService(newFakeReviewRepo())

	_, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{Comment: "great"})
	assert.Error(t, err)
}

func TestSubmit_TrimsComment(t *testing.T) {
	t.Parallel()

	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	rev, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(9),
		Comment: "  great  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "great", rev.Comment)
}

func TestSubmit_DuplicateRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	_, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(9),
		Comment: "great",
	})
	require.NoError(t, err)

	// Second submission by the same user on the same book conflicts.
	_, err = svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(3),
		Comment: "changed my mind",
	})
	assert.ErrorIs(t, err, review.ErrAlreadyReviewed)

	// Same user, different book is fine.
	_, err = svc.Submit(context.Background(), 2, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(3),
		Comment: "other book",
	})
	assert.NoError(t, err)

	// Different user, same book is fine.
	_, err = svc.Submit(context.Background(), 1, 2, review.SubmitReviewRequest{
		Rating:  ratingPtr(3),
		Comment: "other user",
	})
	assert.NoError(t, err)
}

func TestUpdate_OwnerOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	rev, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(9),
		Comment: "great",
	})
	require.NoError(t, err)

	// Non-owner is forbidden.
	err = svc.Update(context.Background(), rev.ID, 2, review.UpdateReviewRequest{
		Rating:  ratingPtr(1),
		Comment: "sabotage",
	})
	assert.ErrorIs(t, err, review.ErrNotOwner)

	// Owner succeeds and the row is overwritten.
	err = svc.Update(context.Background(), rev.ID, 1, review.UpdateReviewRequest{
		Rating:  ratingPtr(6),
		Comment: "on reflection",
	})
	require.NoError(t, err)

	updated, err := repo.FindByID(context.Background(), rev.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, updated.Rating)
	assert.Equal(t, "on reflection", updated.Comment)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewReviewService(newFakeReviewRepo())

	err := svc.Update(context.Background(), 99, 1, review.UpdateReviewRequest{
		Rating:  ratingPtr(5),
		Comment: "whatever",
	})
	assert.ErrorIs(t, err, review.ErrReviewNotFound)
}

func TestUpdate_RevalidatesInput(t *testing.T) {
	t.Parallel()

	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	rev, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(9),
		Comment: "great",
	})
	require.NoError(t, err)

	// Out-of-range rating and blank comment are both rejected on update,
	// same rules as submit.
	err = svc.Update(context.Background(), rev.ID, 1, review.UpdateReviewRequest{
		Rating:  ratingPtr(11),
		Comment: "fine",
	})
	assert.Error(t, err)

	err = svc.Update(context.Background(), rev.ID, 1, review.UpdateReviewRequest{
		Rating:  ratingPtr(5),
		Comment: "   ",
	})
	assert.Error(t, err)
}

func TestDelete_OwnerOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	rev, err := svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(9),
		Comment: "great",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), rev.ID, 2)
	assert.ErrorIs(t, err, review.ErrNotOwner)

	err = svc.Delete(context.Background(), rev.ID, 1)
	require.NoError(t, err)

	// present -> absent: the pair may review again after deletion.
	_, err = svc.Submit(context.Background(), 1, 1, review.SubmitReviewRequest{
		Rating:  ratingPtr(4),
		Comment: "second thoughts",
	})
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewReviewService(newFakeReviewRepo())

	err := svc.Delete(context.Background(), 99, 1)
	assert.ErrorIs(t, err, review.ErrReviewNotFound)
}
