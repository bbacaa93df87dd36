package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagWatch bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show the saved high score",
	Long: `Print the persisted high score. The SQLite backend also reports when
it was saved.

With --watch the command keeps running and prints the score again every
time the high score file changes, for example while another terminal is
playing. Watching requires the file backend.

Examples:
  snake highscore
  snake highscore --watch`,
	Args: cobra.NoArgs,
	Run:  runHighscore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagWatch, "watch", false, "Keep printing the high score when it changes")
}

func runHighscore(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	reportHighScore(os.Stdout, store, logger)
	closeStore(store, logger)

	if !flagWatch {
		return
	}
	if cfg.Storage.Backend == config.BackendSQLite {
		fmt.Fprintln(os.Stderr, "Error: --watch requires the file backend")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("watching high score file", "path", cfg.Storage.HighScorePath)
	err = storage.Watch(ctx, cfg.Storage.HighScorePath, func(score int) {
		fmt.Printf("High score: %d\n", score)
	})
	if err != nil {
		logger.Error("watch stopped", "error", err)
		os.Exit(1)
	}
}

// reportHighScore prints the stored score, with its save time when the
// backend records one.
func reportHighScore(w io.Writer, store storage.HighScoreStore, logger *log.Logger) {
	score, err := store.LoadHighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}

	sq, ok := store.(*storage.SQLiteStore)
	if !ok {
		fmt.Fprintf(w, "High score: %d\n", score)
		return
	}
	at, err := sq.UpdatedAt()
	if err != nil {
		logger.Warn("could not read high score save time", "error", err)
	}
	if at.IsZero() {
		fmt.Fprintf(w, "High score: %d\n", score)
		return
	}
	fmt.Fprintf(w, "High score: %d (saved %s)\n", score, at.Local().Format(time.DateTime))
}

func closeStore(store storage.HighScoreStore, logger *log.Logger) {
	if err := store.Close(); err != nil {
		logger.Warn("could not close high score store", "error", err)
	}
}
