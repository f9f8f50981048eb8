// Command beeline is an interactive Spelling Bee session on the terminal.
// It fetches today's puzzle from the NYT page (falling back to the latest
// stored puzzle when offline), keeps one primary session in PostgreSQL, and
// judges guesses typed on stdin.
//
// Configuration comes from CONFIG_PATH / environment variables; see
// internal/config. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hivegames/beeline/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("beeline: %v", err)
	}
}
