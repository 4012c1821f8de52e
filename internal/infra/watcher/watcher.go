// Package watcher re-triggers work when puzzle input files change.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mawkler/advent-of-code/internal/domain"
)

const minTick = time.Millisecond

const DefaultDebounce = 100 * time.Millisecond

// KeyResolver maps a changed file to the puzzle it holds.
type KeyResolver interface {
	KeyForPath(path string) (domain.PuzzleKey, bool)
}

type Watcher struct {
	dir      string
	keys     KeyResolver
	debounce time.Duration
	filter   func(domain.PuzzleKey) bool
	log      *slog.Logger

	mu      sync.Mutex
	pending map[domain.PuzzleKey]time.Time
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithFilter drops changes for puzzles the caller does not care about.
func WithFilter(f func(domain.PuzzleKey) bool) Option {
	return func(w *Watcher) {
		if f != nil {
			w.filter = f
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New watches dir and everything below it.
func New(dir string, keys KeyResolver, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		keys:     keys,
		debounce: DefaultDebounce,
		filter:   func(domain.PuzzleKey) bool { return true },
		log:      slog.New(slog.DiscardHandler),
		pending:  map[domain.PuzzleKey]time.Time{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done. onChange is called from the Run goroutine,
// once per burst of writes to the same input.
func (w *Watcher) Run(ctx context.Context, onChange func(domain.PuzzleKey)) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return &domain.OpError{Op: "watcher.start", Kind: domain.KindExecution, Path: w.dir, Err: err}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return &domain.OpError{Op: "watcher.start", Kind: domain.KindExecution, Path: w.dir, Err: err}
	}
	defer fw.Close()

	if err := w.addTree(fw, w.dir); err != nil {
		return &domain.OpError{Op: "watcher.start", Kind: domain.KindExecution, Path: w.dir, Err: err}
	}
	w.log.Info("watch.start", "dir", w.dir, "debounce_ms", w.debounce.Milliseconds())

	tick := time.NewTicker(w.tickInterval())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watch.stop")
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(fw, ev)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch.error", "error", err.Error())

		case now := <-tick.C:
			for _, k := range w.due(now) {
				w.log.Info("watch.event", "puzzle", k.String())
				onChange(k)
			}
		}
	}
}

func (w *Watcher) handle(fw *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			// New year directory: watch it and pick up files that
			// landed before the watch was in place.
			if err := w.addTree(fw, ev.Name); err != nil {
				w.log.Warn("watch.add_failed", "dir", ev.Name, "error", err.Error())
			}
			_ = filepath.WalkDir(ev.Name, func(p string, d fs.DirEntry, err error) error {
				if err == nil && !d.IsDir() {
					w.touch(p)
				}
				return nil
			})
			return
		}
	}

	w.touch(ev.Name)
}

// tickInterval is half the debounce window, but never below minTick.
func (w *Watcher) tickInterval() time.Duration {
	return max(w.debounce/2, minTick)
}

func (w *Watcher) touch(path string) {
	k, ok := w.keys.KeyForPath(path)
	if !ok || !w.filter(k) {
		return
	}
	w.mu.Lock()
	w.pending[k] = time.Now()
	w.mu.Unlock()
}

// due returns the keys that have been quiet for a full debounce window.
func (w *Watcher) due(now time.Time) []domain.PuzzleKey {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []domain.PuzzleKey
	for k, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			out = append(out, k)
			delete(w.pending, k)
		}
	}
	return out
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(p)
	})
}
