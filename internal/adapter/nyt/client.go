// Package nyt fetches the current puzzle from the New York Times
// Spelling Bee page. The page embeds the day's game as a
// `window.gameData` JSON blob inside a script tag; no API key is needed.
package nyt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/hivegames/beeline/internal/config"
	"github.com/hivegames/beeline/internal/domain"
)

var gameDataPattern = regexp.MustCompile(`window.gameData = (.*?)</script>`)

// Client fetches today's puzzle from the NYT Spelling Bee page.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from the source configuration. The configured URL is
// overridable, which is what the tests use.
func New(cfg config.SourceConfig, logger *slog.Logger) *Client {
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		log:        logger.With("adapter", "nyt"),
	}
}

// FetchToday returns the puzzle the NYT page currently marks as today's.
func (c *Client) FetchToday(ctx context.Context) (*domain.Puzzle, error) {
	c.log.DebugContext(ctx, "nyt fetch", slog.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("nyt: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "nyt request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("nyt: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nyt: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nyt: read body: %w", err)
	}

	puzzle, err := parseGamePage(body)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "nyt response",
		slog.String("day", puzzle.Day),
		slog.Int("answers", puzzle.Answers.Len()),
		slog.Int("pangrams", puzzle.Pangrams.Len()),
	)
	return puzzle, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "nyt retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}

// parseGamePage extracts the gameData blob from the page HTML and maps the
// "today" record to a domain puzzle. Field-level validation (day format,
// letter counts) is NewPuzzle's job.
func parseGamePage(html []byte) (*domain.Puzzle, error) {
	match := gameDataPattern.FindSubmatch(html)
	if match == nil {
		return nil, fmt.Errorf("nyt: page has no gameData script")
	}

	var data gameData
	if err := json.Unmarshal(match[1], &data); err != nil {
		return nil, fmt.Errorf("nyt: decode gameData: %w", err)
	}

	today := data.Today
	switch {
	case today.PrintDate == "":
		return nil, fmt.Errorf("nyt: gameData.today missing printDate")
	case today.CenterLetter == "":
		return nil, fmt.Errorf("nyt: gameData.today missing centerLetter")
	case len(today.OuterLetters) == 0:
		return nil, fmt.Errorf("nyt: gameData.today missing outerLetters")
	case len(today.Answers) == 0:
		return nil, fmt.Errorf("nyt: gameData.today missing answers")
	}

	puzzle, err := domain.NewPuzzle(
		today.PrintDate,
		today.CenterLetter,
		today.OuterLetters,
		today.Pangrams,
		today.Answers,
	)
	if err != nil {
		return nil, fmt.Errorf("nyt: invalid gameData: %w", err)
	}
	return puzzle, nil
}
