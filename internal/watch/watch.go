// Package watch re-runs a callback whenever a config file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/boundcheck/pkg/log"
)

// DefaultDebounce is how long the watcher waits after the last change
// before running the callback.
const DefaultDebounce = 100 * time.Millisecond

// Func is run once at start and again after every settled change.
type Func func(ctx context.Context) error

// Watcher watches a single file through its parent directory, so editors
// that replace the file on save are still seen.
type Watcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration
	logger   log.Logger
	timer    *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle delay. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger log.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New returns a watcher for path.
func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		logger:   log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run calls fn once, then again whenever the file is written or created,
// until ctx is done. An error from the first call is returned; later
// errors are logged and the loop keeps going.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := fn(ctx); err != nil {
		return err
	}

	fire := make(chan struct{}, 1)
	defer w.stop()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(fire)

		case <-fire:
			w.logger.Info("config changed, re-running", log.String("path", w.path))
			if err := fn(ctx); err != nil {
				w.logger.Error("re-run failed", log.String("path", w.path), log.Err(err))
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

// schedule restarts the debounce timer. The timer never blocks: fire is
// buffered and a pending signal absorbs further ones.
func (w *Watcher) schedule(fire chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
