package bee

import (
	"context"
	"fmt"

	"github.com/hivegames/beeline/internal/domain"
)

// SavePuzzle stores the whole puzzle record, replacing any existing record
// for the same day.
func (s *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if err := s.puzzles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("save puzzle %s: %w", p.Day, err)
	}
	return nil
}

// PuzzleByDay returns the stored puzzle for an exact day.
func (s *Service) PuzzleByDay(ctx context.Context, day string) (*domain.Puzzle, error) {
	return s.puzzles.GetByDay(ctx, day)
}

// LatestPuzzle returns the most recently dated stored puzzle.
func (s *Service) LatestPuzzle(ctx context.Context) (*domain.Puzzle, error) {
	return s.puzzles.GetLatest(ctx)
}

// EnsureImage returns the puzzle's rendered image, drawing and persisting it
// on first use. An already-cached image is returned as-is without invoking
// the renderer.
func (s *Service) EnsureImage(ctx context.Context, p *domain.Puzzle, renderer Renderer) ([]byte, error) {
	if len(p.Image) > 0 {
		return p.Image, nil
	}
	if renderer == nil {
		return nil, nil
	}

	img, err := renderer.Render(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("render puzzle %s: %w", p.Day, err)
	}
	p.Image = img

	if err := s.puzzles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist rendered image for %s: %w", p.Day, err)
	}
	return img, nil
}
