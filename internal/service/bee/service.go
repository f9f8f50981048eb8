// Package bee implements the puzzle engine business logic: session
// lifecycle, guess judging, hints, scoring, and the single-slot
// "current session" specialization.
package bee

import (
	"context"
	"log/slog"

	"github.com/hivegames/beeline/internal/config"
	"github.com/hivegames/beeline/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type puzzleRepo interface {
	Upsert(ctx context.Context, p *domain.Puzzle) error
	GetByDay(ctx context.Context, day string) (*domain.Puzzle, error)
	GetLatest(ctx context.Context) (*domain.Puzzle, error)
}

type sessionRepo interface {
	Upsert(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	SetPrimary(ctx context.Context, id string) error
	GetPrimary(ctx context.Context) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Collaborator contracts (public)
// ---------------------------------------------------------------------------

// Renderer draws a picture of a puzzle's letters. Rendered bytes are cached
// on Puzzle.Image and persisted with the record; the image format is
// self-described by its magic bytes.
type Renderer interface {
	Render(ctx context.Context, p *domain.Puzzle) ([]byte, error)
}

// WordRanker reports how common a word is. Lower rank means more common;
// ok is false when the word is not in the ranker's corpus.
type WordRanker interface {
	Rank(word string) (rank int, ok bool)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the puzzle engine logic on top of the puzzle and
// session repositories.
type Service struct {
	log      *slog.Logger
	puzzles  puzzleRepo
	sessions sessionRepo
	tx       txManager
	cfg      config.BeeConfig
}

// NewService creates a new puzzle engine service.
func NewService(
	logger *slog.Logger,
	puzzles puzzleRepo,
	sessions sessionRepo,
	tx txManager,
	cfg config.BeeConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "bee"),
		puzzles:  puzzles,
		sessions: sessions,
		tx:       tx,
		cfg:      cfg,
	}
}
