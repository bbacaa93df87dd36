package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestReportHighScoreFile(t *testing.T) {
	store, err := storage.Open(config.StorageConfig{
		Backend:       config.BackendFile,
		HighScorePath: filepath.Join(t.TempDir(), "highscore.txt"),
	})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if err := store.SaveHighScore(17); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	var out bytes.Buffer
	reportHighScore(&out, store, log.New(&bytes.Buffer{}))
	if out.String() != "High score: 17\n" {
		t.Errorf("output = %q, expected %q", out.String(), "High score: 17\n")
	}
}

func TestReportHighScoreSQLite(t *testing.T) {
	store, err := storage.Open(config.StorageConfig{
		Backend: config.BackendSQLite,
		DBPath:  filepath.Join(t.TempDir(), "snake.db"),
	})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nothing saved yet: no save time to report.
	var out bytes.Buffer
	reportHighScore(&out, store, log.New(&bytes.Buffer{}))
	if out.String() != "High score: 0\n" {
		t.Errorf("output = %q, expected %q", out.String(), "High score: 0\n")
	}

	if err := store.SaveHighScore(23); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	out.Reset()
	reportHighScore(&out, store, log.New(&bytes.Buffer{}))
	if !strings.HasPrefix(out.String(), "High score: 23 (saved ") {
		t.Errorf("output = %q, expected score with save time", out.String())
	}
}

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) LoadHighScore() (int, error) { return 0, errors.New("disk gone") }
func (failingStore) SaveHighScore(int) error { return errors.New("disk gone") }
func (failingStore) Close() error { return errors.New("already closed") }

func TestReportHighScoreLogsLoadError(t *testing.T) {
	var out, logs bytes.Buffer
	reportHighScore(&out, failingStore{}, log.New(&logs))

	if out.String() != "High score: 0\n" {
		t.Errorf("output = %q, expected %q", out.String(), "High score: 0\n")
	}
	if !strings.Contains(logs.String(), "could not read high score") {
		t.Errorf("log = %q, expected read warning", logs.String())
	}
}

func TestCloseStoreLogsError(t *testing.T) {
	var logs bytes.Buffer
	closeStore(failingStore{}, log.New(&logs))

	if !strings.Contains(logs.String(), "could not close high score store") ||
		!strings.Contains(logs.String(), "already closed") {
		t.Errorf("log = %q, expected close warning with cause", logs.String())
	}
}
