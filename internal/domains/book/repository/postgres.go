package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	book "bookreview-backend/internal/domains/book"
	"bookreview-backend/internal/shared/utils"
	"bookreview-backend/pkg/cache"
)

// bookCacheTTL bounds cache entries even though books are immutable,
// so a wiped database does not serve ghosts forever.
const bookCacheTTL = 15 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the PostgreSQL-backed catalog repository.
// The cache is used read-through on FindByID only: book rows never change
// after insert, so cached entries cannot go stale.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (int64, error) {
	query := `
		INSERT INTO books (title, author, genre, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		b.Title,
		b.Author,
		b.Genre,
		b.CreatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("create book: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	// STEP 1: CHECK CACHE
	cacheKey := fmt.Sprintf("book:%d", id)

	var b book.Book
	found, err := r.cache.Get(ctx, cacheKey, &b)
	if err == nil && found {
		return &b, nil
	}

	// STEP 2: CACHE MISS - QUERY DATABASE
	query := `
		SELECT id, title, author, genre, created_at
		FROM books
		WHERE id = $1
	`

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Genre,
		&b.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	// STEP 3: SET CACHE
	// Ignore cache errors - a request must not fail because Redis is down.
	_ = r.cache.Set(ctx, cacheKey, &b, bookCacheTTL)

	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context, req book.ListBooksRequest) ([]book.Book, error) {
	query := `SELECT id, title, author, genre, created_at FROM books`

	// Optional filters combine with AND. author/genre match
	// case-sensitively (LIKE); search is case-insensitive over
	// title OR author (ILIKE).
	var conditions []string
	var args []any

	if req.Author != "" {
		args = append(args, "%"+req.Author+"%")
		conditions = append(conditions, fmt.Sprintf("author LIKE $%d", len(args)))
	}
	if req.Genre != "" {
		args = append(args, "%"+req.Genre+"%")
		conditions = append(conditions, fmt.Sprintf("genre LIKE $%d", len(args)))
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d)", n, n))
	}

	if len(conditions) > 0 {
		query += " WHERE " + utils.JoinWithAnd(conditions)
	}

	// Insertion order is the engine's stable order.
	args = append(args, req.Limit)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))
	args = append(args, utils.Offset(req.Page, req.Limit))
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}

	return books, nil
}
