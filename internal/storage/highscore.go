package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the high score in a text file as a decimal integer.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path, creating its
// parent directory. The file itself is written on the first save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage: empty high score path")
	}
	path, err := prepareDir(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// LoadHighScore reads the stored score. A missing file or one that does not
// hold a non-negative integer yields 0 with no error.
func (s *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	return ParseHighScore(data), nil
}

// SaveHighScore overwrites the file with score.
func (s *FileStore) SaveHighScore(score int) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open.
func (s *FileStore) Close() error {
	return nil
}

// ParseHighScore decodes file contents, returning 0 for anything that is not
// a non-negative decimal integer. Surrounding whitespace is allowed.
func ParseHighScore(data []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
