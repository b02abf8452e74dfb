package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shortlink/internal/shortener"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations. Duplicate detection is structural, never based on message
// text.
const uniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortener.Store. The
// unique constraint on code enforces the global uniqueness invariant.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed mapping store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the mappings table if it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS mappings (
			code text PRIMARY KEY,
			original_url text NOT NULL,
			created_at timestamptz NOT NULL
		)
	`

	_, err := p.pool.Exec(ctx, query)

	return err
}

func (p *PostgresStore) Insert(ctx context.Context, mapping *shortener.Mapping) error {
	query := `
		INSERT INTO mappings (code, original_url, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := p.pool.Exec(ctx, query,
		string(mapping.Code),
		mapping.OriginalURL,
		mapping.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return shortener.ErrCodeExists
	}

	return err
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	query := `
		SELECT code, original_url, created_at
		FROM mappings
		WHERE code = $1
	`

	var mapping shortener.Mapping

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&mapping.Code,
		&mapping.OriginalURL,
		&mapping.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &mapping, nil
}

func (p *PostgresStore) DeleteByCode(ctx context.Context, code shortener.Code) error {
	// Matching zero rows is still success: delete is idempotent.
	_, err := p.pool.Exec(ctx, `DELETE FROM mappings WHERE code = $1`, string(code))

	return err
}
