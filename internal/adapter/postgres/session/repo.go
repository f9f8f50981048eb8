// Package session implements session-progress persistence using PostgreSQL:
// the sessions table keyed by id, and the single-row primary pointer table
// (the "current session" alias).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hivegames/beeline/internal/adapter/postgres"
	"github.com/hivegames/beeline/internal/domain"
)

const sessionColumns = `id, day, gotten_words, metadata`

const upsertSQL = `
INSERT INTO sessions (id, day, gotten_words, metadata)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
    day          = EXCLUDED.day,
    gotten_words = EXCLUDED.gotten_words,
    metadata     = EXCLUDED.metadata`

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

const setPrimarySQL = `
INSERT INTO primary_session (slot, session_id)
VALUES (1, $1)
ON CONFLICT (slot) DO UPDATE SET session_id = EXCLUDED.session_id`

const getPrimarySQL = `
SELECT session_id FROM primary_session WHERE slot = 1`

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool   *pgxpool.Pool
	schema *postgres.SchemaEnsurer
	log    *slog.Logger
}

// New creates a session repository sharing the given schema ensurer.
func New(pool *pgxpool.Pool, schema *postgres.SchemaEnsurer, logger *slog.Logger) *Repo {
	return &Repo{
		pool:   pool,
		schema: schema,
		log:    logger.With("repo", "session"),
	}
}

// Upsert writes the whole session record, replacing any existing row with
// the same id.
func (r *Repo) Upsert(ctx context.Context, s *domain.Session) error {
	if err := r.schema.Ensure(ctx); err != nil {
		return err
	}

	words, err := json.Marshal(s.GottenWords.Sorted())
	if err != nil {
		return fmt.Errorf("session %s: marshal gotten words: %w", s.ID, err)
	}
	metadata, err := json.Marshal(s.Metadata)
	if err != nil {
		return fmt.Errorf("session %s: marshal metadata: %w", s.ID, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, upsertSQL, s.ID, s.Day, words, metadata); err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// GetByID returns a session by id. Per the storage contract, read failures
// beyond plain absence are logged and reported as domain.ErrNotFound; use
// GetByIDStrict to see the underlying cause.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s, err := r.GetByIDStrict(ctx, id)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	r.log.ErrorContext(ctx, "session read failed, reporting not found",
		slog.String("session_id", id),
		slog.String("error", err.Error()),
	)
	return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
}

// GetByIDStrict is GetByID without the error-swallowing read policy.
func (r *Repo) GetByIDStrict(ctx context.Context, id string) (*domain.Session, error) {
	if err := r.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSession(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// SetPrimary points the single-slot primary alias at the given session id,
// overwriting any previous value.
func (r *Repo) SetPrimary(ctx context.Context, id string) error {
	if err := r.schema.Ensure(ctx); err != nil {
		return err
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, setPrimarySQL, id); err != nil {
		return postgres.MapError(err, "primary session", id)
	}
	return nil
}

// GetPrimary returns the session id the primary pointer currently names.
// An unset pointer reports domain.ErrNotFound.
func (r *Repo) GetPrimary(ctx context.Context) (string, error) {
	if err := r.schema.Ensure(ctx); err != nil {
		return "", err
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var id *string
	if err := querier.QueryRow(ctx, getPrimarySQL).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("primary session: %w", domain.ErrNotFound)
		}
		r.log.ErrorContext(ctx, "primary pointer read failed, reporting not found",
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("primary session: %w", domain.ErrNotFound)
	}
	if id == nil || *id == "" {
		return "", fmt.Errorf("primary session: %w", domain.ErrNotFound)
	}
	return *id, nil
}

// scanSession scans a single session row.
func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		id, day      string
		wordsJSON    []byte
		metadataJSON []byte
	)
	if err := row.Scan(&id, &day, &wordsJSON, &metadataJSON); err != nil {
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(wordsJSON, &words); err != nil {
		return nil, fmt.Errorf("session %s: unmarshal gotten words: %w", id, err)
	}
	var metadata map[string]any
	if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
		return nil, fmt.Errorf("session %s: unmarshal metadata: %w", id, err)
	}

	return domain.NewSession(id, day, domain.NewWordSet(words...), metadata), nil
}
