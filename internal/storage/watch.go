package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Watch calls fn with the new score each time the high-score file at path is
// written or created. It watches the parent directory so that files created
// after the call are picked up. Watch blocks until ctx is cancelled, returning
// nil, or until the watcher fails.
//
// Consecutive identical values are reported once, and empty writes (the
// truncate half of an overwrite) are skipped.
func Watch(ctx context.Context, path string, fn func(score int)) error {
	path, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("storage: cannot create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("storage: cannot watch %s: %w", filepath.Dir(path), err)
	}

	last := -1
	report := func() {
		data, err := os.ReadFile(path)
		if err != nil || len(bytes.TrimSpace(data)) == 0 {
			return
		}
		score := ParseHighScore(data)
		if score == last {
			return
		}
		last = score
		fn(score)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				report()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("storage: watcher failed: %w", err)
		}
	}
}
