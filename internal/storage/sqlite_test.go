package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := OpenSQLite(dbPath, "snake")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath, "snake")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// No score yet
	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0 for empty store", high)
	}

	for _, score := range []int{12, 40, 33} {
		if err := store.SaveHighScore(score); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", score, err)
		}
	}

	// The last save wins; the store holds a single value.
	high, err = store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 33 {
		t.Errorf("LoadHighScore() = %d, expected 33", high)
	}

	updated, err := store.UpdatedAt()
	if err != nil {
		t.Fatalf("UpdatedAt() failed: %v", err)
	}
	if updated.IsZero() {
		t.Error("UpdatedAt() should be set after a save")
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath, "snake")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.SaveHighScore(58); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = OpenSQLite(dbPath, "snake")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.LoadHighScore(); high != 58 {
		t.Errorf("LoadHighScore() after reopen = %d, expected 58", high)
	}
}

func TestSQLiteStoreIsolatesGames(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	snake, err := OpenSQLite(dbPath, "snake")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer snake.Close()
	other, err := OpenSQLite(dbPath, "other")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer other.Close()

	snake.SaveHighScore(9)

	if high, _ := other.LoadHighScore(); high != 0 {
		t.Errorf("other game high score = %d, expected 0", high)
	}
}

func TestSQLiteStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := OpenSQLite(dbPath, "snake")
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
