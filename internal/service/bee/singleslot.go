package bee

import (
	"context"
	"fmt"

	"github.com/hivegames/beeline/internal/domain"
)

// SingleSlotStore is the one-current-session specialization: it persists a
// session and the primary pointer together, so "the" session is always the
// last one saved. Older sessions stay in the sessions table and remain
// loadable by id through ResumeSession, just not through the slot.
type SingleSlotStore struct {
	svc *Service
}

// SingleSlot returns the single-slot view of this service.
func (s *Service) SingleSlot() *SingleSlotStore {
	return &SingleSlotStore{svc: s}
}

// Start creates a new primary session for the puzzle. The record and the
// pointer are written in one transaction; from then on every mutation of the
// session refreshes both.
func (st *SingleSlotStore) Start(ctx context.Context, puzzle *domain.Puzzle, opts ...SessionOption) (*Session, error) {
	sess := newSession(st.svc, puzzle, opts)
	sess.primary = true
	if err := sess.persist(ctx); err != nil {
		return nil, fmt.Errorf("start primary session %s: %w", sess.ID(), err)
	}
	return sess, nil
}

// Save adopts an existing session as the primary one and persists it.
func (st *SingleSlotStore) Save(ctx context.Context, sess *Session) error {
	sess.svc = st.svc
	sess.primary = true
	if err := sess.persist(ctx); err != nil {
		return fmt.Errorf("save primary session %s: %w", sess.ID(), err)
	}
	return nil
}

// Load resolves the primary pointer to its session and puzzle.
func (st *SingleSlotStore) Load(ctx context.Context) (*Session, error) {
	return st.svc.ResumePrimary(ctx)
}
