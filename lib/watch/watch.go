// Package watch reloads component modules when their files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pthm/elcmp"
)

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("watch: watcher closed")

// Change is one component file that changed during a debounce window.
type Change struct {
	// File is the file name relative to the watched directory.
	File    string
	Removed bool
}

// Config holds watcher configuration options.
type Config struct {
	Dir       string
	Extension string
	Debounce  time.Duration
	Logger    *zap.Logger
}

// DefaultConfig returns sensible defaults for watching dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:       dir,
		Extension: elcmp.DefaultExtension,
		Debounce:  200 * time.Millisecond,
	}
}

// Watcher monitors a components directory and reports changed modules in
// debounced batches.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	cfg       Config
	logger    *zap.Logger
	changes   chan []Change
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool
}

// New creates a watcher. Call Start or Run to begin watching.
func New(cfg Config) (*Watcher, error) {
	if cfg.Extension == "" {
		cfg.Extension = elcmp.DefaultExtension
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig(cfg.Dir).Debounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		cfg:       cfg,
		logger:    logger,
		changes:   make(chan []Change),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the directory. The returned channel receives one
// batch per quiet period and is closed after Close.
func (w *Watcher) Start() (<-chan []Change, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, ErrClosed
	}
	if w.started {
		return w.changes, nil
	}

	if err := w.fsWatcher.Add(w.cfg.Dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.cfg.Dir, err)
	}

	w.started = true
	w.wg.Add(1)
	go w.loop()

	return w.changes, nil
}

// Changes returns the batch channel. It is closed after Close, whether or
// not Start was called.
func (w *Watcher) Changes() <-chan []Change {
	return w.changes
}

// Close terminates the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		started := w.started
		w.mu.Unlock()

		close(w.done)
		err = w.fsWatcher.Close()
		w.wg.Wait()
		if !started {
			close(w.changes)
		}
	})
	return err
}

// Run watches until ctx is cancelled, calling fn for every batch. The
// watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, fn func([]Change)) error {
	defer func() { _ = w.Close() }()
	changes, err := w.Start()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case batch, ok := <-changes:
			if !ok {
				return nil
			}
			fn(batch)
		}
	}
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.changes)

	var timer *time.Timer
	pending := map[string]Change{}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			change, ok := w.relevant(event)
			if !ok {
				continue
			}
			pending[change.File] = change

			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.cfg.Debounce)
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			timer = nil
			if len(pending) == 0 {
				continue
			}
			batch := flatten(pending)
			pending = map[string]Change{}

			select {
			case w.changes <- batch:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watch error: %v", err), zap.String("dir", w.cfg.Dir), zap.Error(err))

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant maps an event on a component module to a Change.
func (w *Watcher) relevant(event fsnotify.Event) (Change, bool) {
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, w.cfg.Extension) || strings.HasSuffix(name, "_test.go") || strings.HasPrefix(name, ".") {
		return Change{}, false
	}
	switch {
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return Change{File: name, Removed: true}, true
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		return Change{File: name}, true
	}
	return Change{}, false
}

func flatten(pending map[string]Change) []Change {
	batch := make([]Change, 0, len(pending))
	for _, c := range pending {
		batch = append(batch, c)
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].File < batch[j].File })
	return batch
}

// Reload returns a batch handler that reloads changed modules with loader
// and removes deleted ones from its registry.
func Reload(loader *elcmp.Loader, logger *zap.Logger) func([]Change) {
	if logger == nil {
		logger = zap.L()
	}
	return func(batch []Change) {
		for _, c := range batch {
			name := elcmp.NameOf(c.File)
			if c.Removed {
				if loader.Registry().Remove(name) {
					logger.Info("component removed", zap.String("component", name))
				}
				continue
			}
			if loader.LoadFile(c.File) != nil {
				logger.Info("component reloaded", zap.String("component", name))
			}
		}
	}
}
