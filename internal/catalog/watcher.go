package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/Alchemy_Go/internal/logger"
)

// Reloader is satisfied by Store
type Reloader interface {
	Reload(ctx context.Context) (*Catalog, error)
}

// Watcher reloads the store when the catalog file changes. Editors often
// replace files via rename, so the parent directory is watched and events
// are filtered by file name.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
}

// NewWatcher creates a watcher for path. A zero debounce uses DefaultWatchDebounce.
func NewWatcher(path string, reloader Reloader, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	return &Watcher{path: path, reloader: reloader, debounce: debounce}
}

// Run blocks until ctx is cancelled. Failed reloads are logged and the
// previous snapshot stays active.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve catalog path: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgWatchingCatalog, "path", abs, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("Catalog watcher error", "error", err)

		case <-timer.C:
			// Reload logs its own failures
			_, _ = w.reloader.Reload(ctx)
		}
	}
}
