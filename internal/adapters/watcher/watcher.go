// Package watcher reports changes to a palette file using fsnotify.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultWindow coalesces the burst of events editors emit for a single save.
const DefaultWindow = 100 * time.Millisecond

// Watcher implements ports.Watcher.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// New creates a new Watcher.
func New(log ports.Logger) *Watcher {
	return &Watcher{logger: log, window: DefaultWindow}
}

// WithWindow returns a copy of w using d as the debounce window.
func (w *Watcher) WithWindow(d time.Duration) *Watcher {
	next := *w
	next.window = d
	return &next
}

// Watch observes path. The parent directory is watched so that editors that
// save by renaming a temporary file over the original are still noticed.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}

	out := make(chan struct{}, 1)
	go w.loop(ctx, fsw, target, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, target string, out chan<- struct{}) {
	defer close(out)
	defer func() { _ = fsw.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || !relevant(event.Op) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.window)
			} else {
				timer.Reset(w.window)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			// A pending notification already covers this change.
			select {
			case out <- struct{}{}:
			default:
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("palette watcher: " + err.Error())
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
