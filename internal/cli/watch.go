package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDelay groups the events of a single save, editors often write a
// file in several steps.
const watchDelay = 100 * time.Millisecond

// Watch runs fn, then runs it again after every change of the file at path,
// until ctx is done. Runs never overlap. Errors of fn are logged and do not
// stop the watch.
func Watch(ctx context.Context, path string, logger *slog.Logger, fn func(context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return GeneralError("resolving schema path", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return GeneralError("creating watcher", err)
	}
	defer w.Close()
	// The directory is watched: editors replace files by renaming.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return GeneralError(fmt.Sprintf("watching %s", path), err)
	}

	run := func() {
		if err := fn(ctx); err != nil {
			logger.Error("run failed", "schema", path, "error", err)
		}
	}
	run()

	timer := time.NewTimer(watchDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("schema changed", "schema", path, "op", ev.Op.String())
			timer.Reset(watchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			run()
		}
	}
}
