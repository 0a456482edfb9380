package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, uuid, title, category, rating, price_excl_tax, price_incl_tax, tax, availability, reviews_qtd, COALESCE(description, ''), COALESCE(image, '')`

// PostgresRepo persists books in Postgres
type PostgresRepo struct {
	db *pgxpool.Pool
}

// NewPostgresRepo creates a new Postgres-backed book repository
func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// EnsureSchema creates the books table when it does not exist yet
func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS books (
			id             SERIAL PRIMARY KEY,
			uuid           TEXT NOT NULL UNIQUE,
			title          TEXT NOT NULL,
			category       TEXT NOT NULL DEFAULT '',
			rating         INT NOT NULL DEFAULT 0,
			price_excl_tax DOUBLE PRECISION NOT NULL DEFAULT 0,
			price_incl_tax DOUBLE PRECISION NOT NULL DEFAULT 0,
			tax            DOUBLE PRECISION NOT NULL DEFAULT 0,
			availability   INT NOT NULL DEFAULT 0,
			reviews_qtd    INT NOT NULL DEFAULT 0,
			description    TEXT,
			image          TEXT
		)`
	_, err := r.db.Exec(ctx, ddl)
	return err
}

// ExistsByUUID reports whether a book with the given natural key is stored
func (r *PostgresRepo) ExistsByUUID(ctx context.Context, uuid string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE uuid = $1)`, uuid).Scan(&exists)
	return exists, err
}

// InsertBatch inserts the given books in a single transaction and
// returns the number of rows written. Either all rows commit or none do.
func (r *PostgresRepo) InsertBatch(ctx context.Context, books []Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO books (uuid, title, category, rating, price_excl_tax, price_incl_tax, tax, availability, reviews_qtd, description, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''))`

	for _, b := range books {
		if _, err := tx.Exec(ctx, insert,
			b.UUID, b.Title, b.Category, b.Rating,
			b.PriceExclTax, b.PriceInclTax, b.Tax,
			b.Availability, b.ReviewsQtd, b.Description, b.Image,
		); err != nil {
			return 0, fmt.Errorf("insert book %s: %w", b.UUID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(books), nil
}

// ListAll returns every stored book
func (r *PostgresRepo) ListAll(ctx context.Context) ([]Book, error) {
	return r.queryBooks(ctx, fmt.Sprintf(`SELECT %s FROM books ORDER BY id`, selectColumns))
}

// List returns one page of books
func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Book, error) {
	return r.queryBooks(ctx,
		fmt.Sprintf(`SELECT %s FROM books ORDER BY id LIMIT $1 OFFSET $2`, selectColumns),
		limit, offset)
}

// GetByID returns a single book by its row id
func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Book, error) {
	var b Book
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, selectColumns), id,
	).Scan(&b.ID, &b.UUID, &b.Title, &b.Category, &b.Rating,
		&b.PriceExclTax, &b.PriceInclTax, &b.Tax,
		&b.Availability, &b.ReviewsQtd, &b.Description, &b.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Search returns books filtered by title and/or category
func (r *PostgresRepo) Search(ctx context.Context, title, category string) ([]Book, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if title != "" {
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", argn))
		args = append(args, "%"+title+"%")
		argn++
	}
	if category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", argn))
		args = append(args, category)
		argn++
	}

	query := fmt.Sprintf(`SELECT %s FROM books WHERE %s ORDER BY id`,
		selectColumns, strings.Join(clauses, " AND "))
	return r.queryBooks(ctx, query, args...)
}

// TopRated returns books with rating 4 or higher, best first
func (r *PostgresRepo) TopRated(ctx context.Context) ([]Book, error) {
	return r.queryBooks(ctx,
		fmt.Sprintf(`SELECT %s FROM books WHERE rating >= 4 ORDER BY rating DESC, id`, selectColumns))
}

// PriceRange returns books whose tax-inclusive price falls inside the range
func (r *PostgresRepo) PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Book, error) {
	return r.queryBooks(ctx,
		fmt.Sprintf(`SELECT %s FROM books WHERE price_incl_tax >= $1 AND price_incl_tax <= $2 ORDER BY price_incl_tax`, selectColumns),
		minPrice, maxPrice)
}

// DistinctCategories returns every category present in the catalog
func (r *PostgresRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM books ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.UUID, &b.Title, &b.Category, &b.Rating,
			&b.PriceExclTax, &b.PriceInclTax, &b.Tax,
			&b.Availability, &b.ReviewsQtd, &b.Description, &b.Image); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
