package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/spiral"
)

// settle is how long Watch waits after the last change before reloading.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// Watch calls fn with the reloaded settings each time the file at path
// changes, until ctx is done. A file that fails to load is passed as a
// non-nil error; the previous settings stay in effect at the caller's
// discretion.
//
// The directory is watched rather than the file so that editors replacing
// the file by rename are seen.
func Watch(ctx context.Context, path string, fn func(Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			spiral.Logger().Debug("config changed", "path", abs, "op", event.Op.String())
			timer.Reset(settle)
		case <-timer.C:
			fn(Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			spiral.Logger().Warn("config watch error", "path", abs, "err", err)
		}
	}
}
