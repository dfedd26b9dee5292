package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a single dataset file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename-and-replace are still noticed.
type Watcher struct {
	w    *fsnotify.Watcher
	path string // absolute, cleaned
}

// NewWatcher starts watching path. Events that happen after NewWatcher
// returns are delivered by Run.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("dataset: create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("dataset: watch %s: %w", path, err)
	}

	return &Watcher{w: w, path: abs}, nil
}

// Run calls onChange for every write to or re-creation of the file until
// ctx is done, and then returns ctx.Err(). A watcher error ends Run with
// that error. Run closes the watcher on return.
func (fw *Watcher) Run(ctx context.Context, onChange func()) error {
	defer fw.w.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			onChange()
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("dataset: watch %s: %w", fw.path, err)
		}
	}
}

// Path returns the absolute path being watched.
func (fw *Watcher) Path() string {
	return fw.path
}
