package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads cache whenever the file at path is written, created or
// renamed into place. It blocks until ctx is done.
func Watch(ctx context.Context, path string, cache *Cache, logger *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are still seen.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if _, err := cache.Reload(ctx); err != nil {
				logger.Warn("Catalog reload failed", zap.String("path", path), zap.Error(err))
				continue
			}
			logger.Info("Catalog reloaded", zap.String("path", path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Catalog watcher error", zap.Error(err))
		}
	}
}
