// Package storage persists the snake high score.
//
// Two backends are available: a plain text file holding the score as a
// decimal integer, and a SQLite database using the pure-Go modernc.org/sqlite
// driver. Both treat a missing record as a high score of 0.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// HighScoreStore loads and saves the single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	Close() error
}

// Open creates the backend selected by cfg.
func Open(cfg config.StorageConfig) (HighScoreStore, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		s, err := NewFileStore(cfg.HighScorePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(cfg.DBPath, "snake")
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

// prepareDir expands ~ in path and creates its parent directory.
func prepareDir(path string) (string, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
