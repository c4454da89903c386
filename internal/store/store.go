package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the write-only selection audit log. Nothing in the selection
// pipeline reads from it.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// schema is idempotent so EnsureSchema can run on every start.
const schema = `
CREATE TABLE IF NOT EXISTS slide_selections (
	id            uuid PRIMARY KEY,
	request_id    text NOT NULL DEFAULT '',
	source        text NOT NULL,
	variant       text NOT NULL,
	campaign_name text NOT NULL DEFAULT '',
	brand         text NOT NULL DEFAULT '',
	slide_indices integer[] NOT NULL,
	tactics       text[] NOT NULL,
	confidence    integer NOT NULL,
	output        jsonb NOT NULL,
	created_at    timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS slide_selections_created_at_idx ON slide_selections (created_at);
`

// EnsureSchema creates the audit table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
