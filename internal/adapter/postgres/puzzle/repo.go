// Package puzzle implements the puzzle repository using PostgreSQL.
// Letter lists and word sets are stored as JSONB arrays; the rendered image
// is an opaque bytea blob.
package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hivegames/beeline/internal/adapter/postgres"
	"github.com/hivegames/beeline/internal/domain"
)

var puzzleColumns = []string{"day", "center", "outside", "pangrams", "answers", "image"}

const upsertSQL = `
INSERT INTO puzzles (day, center, outside, pangrams, answers, image)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (day) DO UPDATE SET
    center   = EXCLUDED.center,
    outside  = EXCLUDED.outside,
    pangrams = EXCLUDED.pangrams,
    answers  = EXCLUDED.answers,
    image    = EXCLUDED.image`

// Repo provides puzzle persistence backed by PostgreSQL.
type Repo struct {
	pool   *pgxpool.Pool
	schema *postgres.SchemaEnsurer
	log    *slog.Logger
}

// New creates a puzzle repository. The schema ensurer is shared across repos
// so the DDL runs once per process.
func New(pool *pgxpool.Pool, schema *postgres.SchemaEnsurer, logger *slog.Logger) *Repo {
	return &Repo{
		pool:   pool,
		schema: schema,
		log:    logger.With("repo", "puzzle"),
	}
}

// Upsert writes the whole puzzle record, replacing any existing row for the
// same day. There are no partial field updates.
func (r *Repo) Upsert(ctx context.Context, p *domain.Puzzle) error {
	if err := r.schema.Ensure(ctx); err != nil {
		return err
	}

	outside, err := json.Marshal(p.Outside)
	if err != nil {
		return fmt.Errorf("puzzle %s: marshal outside: %w", p.Day, err)
	}
	pangrams, err := marshalWords(p.Pangrams)
	if err != nil {
		return fmt.Errorf("puzzle %s: marshal pangrams: %w", p.Day, err)
	}
	answers, err := marshalWords(p.Answers)
	if err != nil {
		return fmt.Errorf("puzzle %s: marshal answers: %w", p.Day, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, upsertSQL, p.Day, p.Center, outside, pangrams, answers, p.Image); err != nil {
		return postgres.MapError(err, "puzzle", p.Day)
	}
	return nil
}

// GetByDay returns the puzzle stored for an exact day. Per the storage
// contract, any read failure beyond plain absence is logged with its cause
// and reported as domain.ErrNotFound — callers that must tell a corrupt row
// from a missing one use GetByDayStrict.
func (r *Repo) GetByDay(ctx context.Context, day string) (*domain.Puzzle, error) {
	return r.lenient(ctx, day, func() (*domain.Puzzle, error) {
		return r.GetByDayStrict(ctx, day)
	})
}

// GetLatest returns the most recent puzzle by day ordering, with the same
// lenient read policy as GetByDay.
func (r *Repo) GetLatest(ctx context.Context) (*domain.Puzzle, error) {
	return r.lenient(ctx, "latest", func() (*domain.Puzzle, error) {
		return r.GetLatestStrict(ctx)
	})
}

// GetByDayStrict is GetByDay without the error-swallowing read policy:
// storage and deserialization failures propagate to the caller.
func (r *Repo) GetByDayStrict(ctx context.Context, day string) (*domain.Puzzle, error) {
	return r.get(ctx, day)
}

// GetLatestStrict is GetLatest without the error-swallowing read policy.
func (r *Repo) GetLatestStrict(ctx context.Context) (*domain.Puzzle, error) {
	return r.get(ctx, "")
}

// get fetches one puzzle row; an empty day selects the newest row instead of
// an exact match.
func (r *Repo) get(ctx context.Context, day string) (*domain.Puzzle, error) {
	if err := r.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	builder := sq.Select(puzzleColumns...).
		From("puzzles").
		PlaceholderFormat(sq.Dollar)
	key := day
	if day == "" {
		key = "latest"
		builder = builder.OrderBy("day DESC").Limit(1)
	} else {
		builder = builder.Where(sq.Eq{"day": day})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: build query: %w", key, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	p, err := scanPuzzle(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "puzzle", key)
	}
	return p, nil
}

// lenient applies the read failure policy: absence passes through, anything
// else is logged and reported as absence. This trades diagnosability for
// availability and is a documented limitation of the storage contract.
func (r *Repo) lenient(ctx context.Context, key string, fetch func() (*domain.Puzzle, error)) (*domain.Puzzle, error) {
	p, err := fetch()
	if err == nil {
		return p, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	r.log.ErrorContext(ctx, "puzzle read failed, reporting not found",
		slog.String("day", key),
		slog.String("error", err.Error()),
	)
	return nil, fmt.Errorf("puzzle %s: %w", key, domain.ErrNotFound)
}

// scanPuzzle scans a single puzzle row.
func scanPuzzle(row pgx.Row) (*domain.Puzzle, error) {
	var (
		day, center  string
		outsideJSON  []byte
		pangramsJSON []byte
		answersJSON  []byte
		image        []byte
	)
	if err := row.Scan(&day, &center, &outsideJSON, &pangramsJSON, &answersJSON, &image); err != nil {
		return nil, err
	}

	var outside []string
	if err := json.Unmarshal(outsideJSON, &outside); err != nil {
		return nil, fmt.Errorf("unmarshal outside: %w", err)
	}
	pangrams, err := unmarshalWords(pangramsJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal pangrams: %w", err)
	}
	answers, err := unmarshalWords(answersJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}

	p, err := domain.NewPuzzle(day, center, outside, pangrams, answers)
	if err != nil {
		return nil, fmt.Errorf("reconstruct puzzle: %w", err)
	}
	p.Image = image
	return p, nil
}

// marshalWords serializes a WordSet as a sorted JSON array. Order is not
// significant on read, but sorting keeps the stored form stable.
func marshalWords(s domain.WordSet) ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func unmarshalWords(data []byte) ([]string, error) {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return words, nil
}
