package generator

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls fn every time the file at path changes, after the debounce
// period has passed without further events. The parent directory is watched
// so editors that replace the file on save are still observed. Watch blocks
// until ctx is done; failures of fn are logged and do not stop the watch.
func (g *Generator) Watch(ctx context.Context, path string, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("generator: watch callback is required")
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "generator: resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "generator: create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "generator: watch %s", target)
	}
	g.logger.Info("watching export", zap.String("path", target))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			g.logger.Debug("export changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(g.debounce)
			} else {
				timer.Reset(g.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.logger.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := fn(ctx); err != nil {
				g.logger.Error("regeneration failed", zap.Error(err))
				continue
			}
			g.logger.Info("regenerated", zap.String("path", target))
		}
	}
}
