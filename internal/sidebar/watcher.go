package sidebar

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"chipbar/internal/model"
)

// Watch reloads the sidebar file whenever it is written or recreated and passes
// the new links to onChange. It blocks until ctx is cancelled.
// A file that fails to parse keeps the previous links.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func([]model.Link)) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create sidebar watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	abs, err := filepath.Abs(expandTilde(path))
	if err != nil {
		return fmt.Errorf("resolve sidebar path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching sidebar", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			links, err := Load(abs)
			if err != nil {
				logger.Warn("sidebar reload failed", "path", abs, "error", err)
				continue
			}
			logger.Info("sidebar reloaded", "path", abs, "links", len(links))
			onChange(links)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("sidebar watcher error", "error", err)
		}
	}
}
