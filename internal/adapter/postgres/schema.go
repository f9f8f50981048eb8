package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL mirrors migrations/00001_create_core_tables.sql. Repos apply it
// lazily on first use so a fresh database works without an explicit migration
// step; every statement is idempotent, so running it after goose is harmless.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS puzzles (
    day      text PRIMARY KEY,
    center   text NOT NULL,
    outside  jsonb NOT NULL,
    pangrams jsonb NOT NULL,
    answers  jsonb NOT NULL,
    image    bytea
);
CREATE INDEX IF NOT EXISTS puzzles_chrono ON puzzles (day);

CREATE TABLE IF NOT EXISTS sessions (
    id           text PRIMARY KEY,
    day          text NOT NULL,
    gotten_words jsonb NOT NULL DEFAULT '[]',
    metadata     jsonb NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS primary_session (
    slot       int PRIMARY KEY DEFAULT 1 CHECK (slot = 1),
    session_id text
);
`

// SchemaEnsurer lazily creates the storage schema on the first repository
// operation. Success is remembered; a failed attempt is retried on the next
// call so a transient connection error does not poison the process.
type SchemaEnsurer struct {
	pool *pgxpool.Pool

	mu   sync.Mutex
	done bool
}

// NewSchemaEnsurer wraps pool with lazy schema creation.
func NewSchemaEnsurer(pool *pgxpool.Pool) *SchemaEnsurer {
	return &SchemaEnsurer{pool: pool}
}

// Ensure applies the schema DDL if it has not been applied yet.
func (s *SchemaEnsurer) Ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	s.done = true
	return nil
}
