// Package watcher monitors a note file and re-tidies it on change.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sgx-labs/notetidy/internal/store"
	"github.com/sgx-labs/notetidy/internal/tidy"
)

// Watch blocks watching the note file's directory, re-running the tidy
// pipeline (in place) after each debounced change. It returns when the
// context is done or the watcher fails.
//
// Editors replace files on save and fsnotify tracks inodes, so the parent
// directory is watched rather than the file itself.
func Watch(ctx context.Context, db *store.DB, notePath string, debounce time.Duration) error {
	absPath, err := filepath.Abs(notePath)
	if err != nil {
		return fmt.Errorf("resolve note path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(absPath)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s\n", notePath)
	fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop.\n\n")

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	flush := func() {
		if selfWrite(db, absPath, notePath) {
			return
		}
		res, _, err := tidy.File(db, notePath, "", "watch", true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [ERROR] %v\n", err)
			return
		}
		if res.Changed {
			fmt.Fprintf(os.Stderr, "  Tidied %s (%d entries)\n", notePath, res.Entries)
		} else {
			fmt.Fprintf(os.Stderr, "  Already tidy: %s\n", notePath)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, flush)
				mu.Unlock()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "  [WARN] watch error: %v\n", err)
		}
	}
}

// selfWrite reports whether the file's current content matches the journal's
// last recorded output for it, i.e. the change event came from our own
// in-place write. Without a journal every event triggers a tidy, which is
// harmless since the pipeline is idempotent.
func selfWrite(db *store.DB, absPath, notePath string) bool {
	if db == nil {
		return false
	}
	last, err := db.LastHash(notePath)
	if err != nil || last == "" {
		return false
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return false
	}
	return store.HashText(string(data)) == last
}
