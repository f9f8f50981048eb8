package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hivegames/beeline/internal/adapter/nyt"
	"github.com/hivegames/beeline/internal/adapter/postgres"
	puzzlerepo "github.com/hivegames/beeline/internal/adapter/postgres/puzzle"
	sessionrepo "github.com/hivegames/beeline/internal/adapter/postgres/session"
	"github.com/hivegames/beeline/internal/config"
	"github.com/hivegames/beeline/internal/domain"
	"github.com/hivegames/beeline/internal/service/bee"
)

// Run is the application entry point for the interactive demo. It loads
// configuration, connects to the database, resumes the primary session or
// starts a fresh one on today's puzzle, and reads guesses from stdin until
// EOF.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	schema := postgres.NewSchemaEnsurer(pool)
	svc := bee.NewService(
		logger,
		puzzlerepo.New(pool, schema, logger),
		sessionrepo.New(pool, schema, logger),
		postgres.NewTxManager(pool),
		cfg.Bee,
	)

	sess, err := currentSession(ctx, svc, nyt.New(cfg.Source, logger), logger)
	if err != nil {
		return err
	}

	return guessLoop(ctx, sess, os.Stdin, os.Stdout)
}

// currentSession resumes the primary session when one exists and its puzzle
// is still the freshest we can get; otherwise it fetches today's puzzle,
// stores it, and starts a new primary session.
func currentSession(ctx context.Context, svc *bee.Service, source *nyt.Client, logger *slog.Logger) (*bee.Session, error) {
	fetched, fetchErr := source.FetchToday(ctx)
	if fetchErr != nil {
		logger.Warn("puzzle fetch failed, falling back to stored data",
			slog.String("error", fetchErr.Error()))
	}

	sess, err := svc.SingleSlot().Load(ctx)
	if err == nil {
		if fetched == nil || sess.Puzzle().LettersMatch(fetched) {
			logger.Info("resumed session",
				slog.String("session_id", sess.ID()),
				slog.String("day", sess.Puzzle().Day),
			)
			return sess, nil
		}
		// A newer puzzle is out; the old session stays in the table.
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	puzzle := fetched
	if puzzle == nil {
		puzzle, err = svc.LatestPuzzle(ctx)
		if err != nil {
			return nil, fmt.Errorf("no puzzle available: %w", err)
		}
	} else if err := svc.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	sess, err = svc.SingleSlot().Start(ctx, puzzle)
	if err != nil {
		return nil, err
	}
	logger.Info("started session",
		slog.String("session_id", sess.ID()),
		slog.String("day", puzzle.Day),
	)
	return sess, nil
}

// guessLoop reads lines from in and judges them until EOF. Blank lines print
// the hint table instead of being judged.
func guessLoop(ctx context.Context, sess *bee.Session, in io.Reader, out io.Writer) error {
	p := sess.Puzzle()
	fmt.Fprintf(out, "Spelling Bee %s: center %s, outside %s\n",
		p.Day, p.Center, strings.Join(p.Outside, ""))
	fmt.Fprintf(out, "%d points of %d (%s). Enter guesses, blank line for hints.\n",
		sess.Points(), sess.MaxPoints(), sess.Ranking())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(out, sess.Hints().FormatTable())
			continue
		}

		result, err := sess.GuessLine(ctx, line)
		if err != nil {
			return err
		}
		for _, wj := range result.Judged {
			fmt.Fprintf(out, "  %-16s %s\n", wj.Word, formatJudgment(wj.Judgment))
		}
		if result.PointsGained > 0 {
			fmt.Fprintf(out, "+%d points, %d total (%s)\n",
				result.PointsGained, sess.Points(), sess.Ranking())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read guesses: %w", err)
	}

	fmt.Fprintf(out, "\nFinal: %d points, %.1f%% of words (%s)\n",
		sess.Points(), sess.PercentageWordsGotten(), sess.Ranking())
	return nil
}

func formatJudgment(j domain.JudgmentSet) string {
	switch {
	case j.Contains(domain.JudgmentAlreadyGotten):
		return "already gotten"
	case j.Contains(domain.JudgmentPangram):
		return "pangram!"
	case j.Contains(domain.JudgmentGood):
		return "good"
	default:
		return "wrong"
	}
}
