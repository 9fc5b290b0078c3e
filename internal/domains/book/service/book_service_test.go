package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview-backend/internal/domains/book"
	"bookreview-backend/internal/domains/review"
)

// -------- test fakes --------

type fakeBookRepo struct {
	books   map[int64]*book.Book
	nextID  int64
	lastReq book.ListBooksRequest
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[int64]*book.Book{}, nextID: 1}
}

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *b
	stored.ID = id
	f.books[id] = &stored
	return id, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) List(ctx context.Context, req book.ListBooksRequest) ([]book.Book, error) {
	f.lastReq = req
	out := make([]book.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, *b)
	}
	return out, nil
}

// fakeReviewReader serves the cross-domain reads GetBookDetail makes.
// Write methods are never reached from the book service.
type fakeReviewReader struct {
	avg        *float64
	reviews    []review.ReviewWithUser
	lastLimit  int
	lastOffset int
}

func (f *fakeReviewReader) Create(ctx context.Context, rev *review.Review) (int64, error) {
	panic("not used")
}

func (f *fakeReviewReader) FindByID(ctx context.Context, id int64) (*review.Review, error) {
	panic("not used")
}

func (f *fakeReviewReader) ExistsByBookAndUser(ctx context.Context, bookID, userID int64) (bool, error) {
	panic("not used")
}

func (f *fakeReviewReader) Update(ctx context.Context, id int64, rating float64, comment string) error {
	panic("not used")
}

func (f *fakeReviewReader) Delete(ctx context.Context, id int64) error {
	panic("not used")
}

func (f *fakeReviewReader) ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]review.ReviewWithUser, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return f.reviews, nil
}

func (f *fakeReviewReader) AverageRating(ctx context.Context, bookID int64) (*float64, error) {
	return f.avg, nil
}

func avgPtr(v float64) *float64 { return &v }

// -------- tests --------

func TestAddBook_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeBookRepo()
	svc := NewBookService(repo, &fakeReviewReader{})

	b, err := svc.AddBook(context.Background(), book.CreateBookRequest{
		Title:  "The Dispossessed",
		Author: "Ursula K. Le Guin",
		Genre:  "Science Fiction",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, "The Dispossessed", b.Title)
}

func TestAddBook_Validation(t *testing.T) {
	t.Parallel()

	svc := NewBookService(newFakeBookRepo(), &fakeReviewReader{})

	tests := []struct {
		name string
		req  book.CreateBookRequest
	}{
		{"missing title", book.CreateBookRequest{Author: "a", Genre: "g"}},
		{"missing author", book.CreateBookRequest{Title: "t", Genre: "g"}},
		{"missing genre", book.CreateBookRequest{Title: "t", Author: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.AddBook(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestListBooks_PaginationNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, book.DefaultListLimit},
		{"negative page", -3, 20, 1, 20},
		{"limit capped", 1, 5000, 1, book.MaxLimit},
		{"passthrough", 2, 25, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeBookRepo()
			svc := NewBookService(repo, &fakeReviewReader{})

			_, err := svc.ListBooks(context.Background(), book.ListBooksRequest{
				Page:  tt.page,
				Limit: tt.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, repo.lastReq.Page)
			assert.Equal(t, tt.wantLimit, repo.lastReq.Limit)
		})
	}
}

func TestGetBookDetail_AverageFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		avg  *float64
		want string
	}{
		{"no reviews", nil, "No ratings yet"},
		{"mean of 8 and 6", avgPtr(7), "7.0/10"},
		{"rounded to one place", avgPtr(7.25), "7.3/10"},
		{"top score", avgPtr(10), "10.0/10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeBookRepo()
			id, err := repo.Create(context.Background(), &book.Book{Title: "t", Author: "a", Genre: "g"})
			require.NoError(t, err)

			svc := NewBookService(repo, &fakeReviewReader{avg: tt.avg})

			detail, err := svc.GetBookDetail(context.Background(), id, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, detail.AverageRating)
		})
	}
}

func TestGetBookDetail_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewBookService(newFakeBookRepo(), &fakeReviewReader{})

	_, err := svc.GetBookDetail(context.Background(), 99, 1, 5)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestGetBookDetail_ReviewPaging(t *testing.T) {
	t.Parallel()

	repo := newFakeBookRepo()
	id, err := repo.Create(context.Background(), &book.Book{Title: "t", Author: "a", Genre: "g"})
	require.NoError(t, err)

	reader := &fakeReviewReader{reviews: []review.ReviewWithUser{{ID: 1, Rating: 8, Comment: "c", Username: "u"}}}
	svc := NewBookService(repo, reader)

	// Zero values fall back to the review page defaults.
	detail, err := svc.GetBookDetail(context.Background(), id, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, book.DefaultReviewLimit, reader.lastLimit)
	assert.Equal(t, 0, reader.lastOffset)
	assert.Len(t, detail.Reviews, 1)

	// Page 3 at limit 5 skips the first ten rows.
	_, err = svc.GetBookDetail(context.Background(), id, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, reader.lastLimit)
	assert.Equal(t, 10, reader.lastOffset)
}
