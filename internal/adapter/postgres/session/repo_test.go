package session_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hivegames/beeline/internal/adapter/postgres"
	"github.com/hivegames/beeline/internal/adapter/postgres/session"
	"github.com/hivegames/beeline/internal/adapter/postgres/testhelper"
	"github.com/hivegames/beeline/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*session.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	log := slog.New(slog.DiscardHandler)
	return session.New(pool, postgres.NewSchemaEnsurer(pool), log), pool
}

func TestRepo_UpsertAndGetByID(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	s := domain.NewSession(testhelper.SessionID(), "2022-01-16",
		domain.NewWordSet("hunk", "chunk"),
		map[string]any{"channel": "bee-corner", "streak": float64(3)},
	)
	if err := repo.Upsert(ctx, s); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != s.ID || got.Day != s.Day {
		t.Errorf("got id=%q day=%q", got.ID, got.Day)
	}
	if !got.GottenWords.Equal(s.GottenWords) {
		t.Errorf("GottenWords = %v", got.GottenWords.Sorted())
	}
	if got.Metadata["channel"] != "bee-corner" {
		t.Errorf("Metadata[channel] = %v", got.Metadata["channel"])
	}
	if got.Metadata["streak"] != float64(3) {
		t.Errorf("Metadata[streak] = %v", got.Metadata["streak"])
	}
}

func TestRepo_UpsertOverwrites(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	s := domain.NewSession(testhelper.SessionID(), "2022-01-16", nil, nil)
	if err := repo.Upsert(ctx, s); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	s.GottenWords.Add("hunk")
	s.Metadata["note"] = "later"
	if err := repo.Upsert(ctx, s); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.GottenWords.Contains("hunk") {
		t.Error("gotten words should include hunk after re-save")
	}
	if got.Metadata["note"] != "later" {
		t.Errorf("Metadata[note] = %v", got.Metadata["note"])
	}
}

func TestRepo_GetByID_Missing(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), testhelper.SessionID())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRepo_CorruptRow_ReadPolicy(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	s := domain.NewSession(testhelper.SessionID(), "2022-01-16", nil, nil)
	if err := repo.Upsert(ctx, s); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	_, err := pool.Exec(ctx,
		`UPDATE sessions SET gotten_words = '{"oops": true}' WHERE id = $1`, s.ID)
	if err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	if _, err := repo.GetByID(ctx, s.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("lenient read of corrupt row = %v, want ErrNotFound", err)
	}

	_, err = repo.GetByIDStrict(ctx, s.ID)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Errorf("strict read of corrupt row = %v, want a real decode error", err)
	}
}

func TestRepo_PrimaryPointer(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	// Unset pointer reads as absence.
	if _, err := repo.GetPrimary(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetPrimary(unset) error = %v, want ErrNotFound", err)
	}

	first := domain.NewSession(testhelper.SessionID(), "2022-01-16", nil, nil)
	second := domain.NewSession(testhelper.SessionID(), "2022-01-17", nil, nil)
	for _, s := range []*domain.Session{first, second} {
		if err := repo.Upsert(ctx, s); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	if err := repo.SetPrimary(ctx, first.ID); err != nil {
		t.Fatalf("SetPrimary: %v", err)
	}
	got, err := repo.GetPrimary(ctx)
	if err != nil {
		t.Fatalf("GetPrimary: %v", err)
	}
	if got != first.ID {
		t.Errorf("GetPrimary = %q, want %q", got, first.ID)
	}

	// The pointer is overwritten, not versioned.
	if err := repo.SetPrimary(ctx, second.ID); err != nil {
		t.Fatalf("SetPrimary overwrite: %v", err)
	}
	got, err = repo.GetPrimary(ctx)
	if err != nil {
		t.Fatalf("GetPrimary: %v", err)
	}
	if got != second.ID {
		t.Errorf("GetPrimary after overwrite = %q, want %q", got, second.ID)
	}

	// The first session is no longer reachable via the pointer, but its row
	// survives and direct retrieval still works.
	if _, err := repo.GetByID(ctx, first.ID); err != nil {
		t.Errorf("GetByID(first) after pointer overwrite: %v", err)
	}
}
