package bee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hivegames/beeline/internal/domain"
)

// Session is the runtime view of one player's progress on one puzzle. It
// owns the authoritative in-memory copy of the gotten-word set; a bound
// session writes the record back after every mutation, so the stored row
// never lags a judged guess.
//
// A session created with NewSession is unbound: it judges and scores purely
// in memory and its MakePrimary is a no-op. Sessions obtained from a Service
// (StartSession, ResumeSession, SingleSlotStore) are bound.
type Session struct {
	svc     *Service
	puzzle  *domain.Puzzle
	rec     *domain.Session
	bonus   int
	primary bool
}

// SessionOption customizes session creation.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	id       string
	words    []string
	metadata map[string]any
}

// WithID fixes the session id instead of generating one.
func WithID(id string) SessionOption {
	return func(o *sessionOptions) { o.id = id }
}

// WithWords pre-seeds the gotten-word set.
func WithWords(words ...string) SessionOption {
	return func(o *sessionOptions) { o.words = words }
}

// WithMetadata attaches opaque caller-owned metadata to the session record.
func WithMetadata(metadata map[string]any) SessionOption {
	return func(o *sessionOptions) { o.metadata = metadata }
}

// NewSession creates an unbound in-memory session for the given puzzle.
// Nothing is persisted.
func NewSession(puzzle *domain.Puzzle, opts ...SessionOption) *Session {
	return newSession(nil, puzzle, opts)
}

// StartSession creates a session bound to this service and persists it
// immediately.
func (s *Service) StartSession(ctx context.Context, puzzle *domain.Puzzle, opts ...SessionOption) (*Session, error) {
	sess := newSession(s, puzzle, opts)
	if err := sess.persist(ctx); err != nil {
		return nil, fmt.Errorf("start session %s: %w", sess.ID(), err)
	}
	return sess, nil
}

// ResumeSession loads a stored session by id along with its puzzle.
func (s *Service) ResumeSession(ctx context.Context, id string) (*Session, error) {
	rec, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	puzzle, err := s.puzzles.GetByDay(ctx, rec.Day)
	if err != nil {
		return nil, fmt.Errorf("session %s: puzzle %s: %w", id, rec.Day, err)
	}

	return &Session{
		svc:    s,
		puzzle: puzzle,
		rec:    rec,
		bonus:  s.cfg.PangramBonus,
	}, nil
}

// ResumePrimary loads the session the primary pointer currently names.
func (s *Service) ResumePrimary(ctx context.Context) (*Session, error) {
	id, err := s.sessions.GetPrimary(ctx)
	if err != nil {
		return nil, err
	}
	sess, err := s.ResumeSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.primary = true
	return sess, nil
}

func newSession(svc *Service, puzzle *domain.Puzzle, opts []SessionOption) *Session {
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	bonus := domain.DefaultPangramBonus
	if svc != nil {
		bonus = svc.cfg.PangramBonus
	}

	return &Session{
		svc:    svc,
		puzzle: puzzle,
		rec:    domain.NewSession(o.id, puzzle.Day, domain.NewWordSet(o.words...), o.metadata),
		bonus:  bonus,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.rec.ID }

// Puzzle returns the puzzle this session plays.
func (s *Session) Puzzle() *domain.Puzzle { return s.puzzle }

// GottenWords returns a copy of the words judged good so far.
func (s *Session) GottenWords() domain.WordSet { return s.rec.GottenWords.Clone() }

// Metadata returns the session's opaque metadata.
func (s *Session) Metadata() map[string]any { return s.rec.Metadata }

// MakePrimary points the single-slot primary alias at this session. Unbound
// sessions have nowhere to register, so this is a no-op for them.
func (s *Session) MakePrimary(ctx context.Context) error {
	if s.svc == nil {
		return nil
	}
	if err := s.svc.sessions.SetPrimary(ctx, s.rec.ID); err != nil {
		return fmt.Errorf("make session %s primary: %w", s.rec.ID, err)
	}
	s.primary = true
	return nil
}

// Hints summarizes the words not yet gotten.
func (s *Session) Hints() *domain.HintSummary {
	return domain.NewHintSummary(s.puzzle.UnguessedAnswers(s.rec.GottenWords).Sorted())
}

// Points returns the score of the gotten words.
func (s *Session) Points() int {
	return domain.ValidWordsPoints(s.rec.GottenWords.Sorted(), s.puzzle, s.bonus)
}

// MaxPoints returns the score of the full answer set.
func (s *Session) MaxPoints() int {
	return domain.MaxPoints(s.puzzle, s.bonus)
}

// PointsPercentage returns gotten points as a percentage of the maximum,
// rounded to one decimal place.
func (s *Session) PointsPercentage() float64 {
	return domain.PointsPercentage(s.Points(), s.MaxPoints())
}

// Ranking returns the label for the current score.
func (s *Session) Ranking() string {
	return domain.Ranking(s.Points(), s.MaxPoints())
}

// PercentageWordsGotten returns the share of answers found, by word count.
func (s *Session) PercentageWordsGotten() float64 {
	return s.puzzle.PercentageComplete(s.rec.GottenWords)
}

// persist writes the session record back. Primary sessions also refresh the
// single-slot pointer in the same transaction, so the pointer can never name
// a session state that was not committed.
func (s *Session) persist(ctx context.Context) error {
	if s.svc == nil {
		return nil
	}
	if s.primary {
		return s.svc.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.svc.sessions.Upsert(txCtx, s.rec); err != nil {
				return err
			}
			return s.svc.sessions.SetPrimary(txCtx, s.rec.ID)
		})
	}
	return s.svc.sessions.Upsert(ctx, s.rec)
}
