// Package watch reruns a composition whenever a file that can change its
// outcome is touched inside the workspace.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce batches editor save bursts into one run.
const DefaultDebounce = 200 * time.Millisecond

// DefaultNames are base names that trigger a run when created, written,
// removed or renamed in the workspace root.
var DefaultNames = []string{
	"package.json",
	"pnpm-workspace.yaml",
	"tsconfig.json",
	".gitignore",
	"flatlint.toml",
	".flatlint.toml",
	"flatlint.yaml",
}

// installMarkers are written by package managers at the end of an install.
var installMarkers = []string{
	".package-lock.json",
	".modules.yaml",
	".yarn-state.yml",
}

// Trigger is called with the sorted list of changed paths.
type Trigger func(ctx context.Context, changed []string) error

// Watcher observes a workspace root and its node_modules directory.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration
	names    map[string]bool
	logger   zerolog.Logger

	mu      sync.Mutex
	pending map[string]fsnotify.Op
	running bool
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithNames adds base names to DefaultNames.
func WithNames(names ...string) Option {
	return func(w *Watcher) {
		for _, n := range names {
			w.names[n] = true
		}
	}
}

// New creates a watcher for root. Nothing is observed until Run.
func New(root string, opts ...Option) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot watch %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root).
			WithDetail("path", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot create file watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		root:     root,
		debounce: DefaultDebounce,
		names:    make(map[string]bool),
		logger:   logging.GetLogger("watch"),
		pending:  make(map[string]fsnotify.Op),
	}
	for _, n := range DefaultNames {
		w.names[n] = true
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is cancelled or the trigger fails. The underlying
// fsnotify watcher is closed on return, so a Watcher runs only once.
func (w *Watcher) Run(ctx context.Context, trigger Trigger) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New(errors.ErrInternal, "watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn().Err(err).Msg("closing file watcher")
		}
	}()

	if err := w.fsw.Add(w.root); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot watch %s", w.root)
	}
	w.addNodeModules()
	w.logger.Info().Str("root", w.root).Msg("Watching workspace")

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()
	var last time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("watch cancelled")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.handle(event) {
				last = time.Now()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("file watcher error")

		case <-ticker.C:
			if last.IsZero() || time.Since(last) < w.debounce {
				continue
			}
			last = time.Time{}
			changed := w.drain()
			if len(changed) == 0 {
				continue
			}
			w.logger.Debug().Strs("changed", changed).Msg("Recomposing")
			if err := trigger(ctx, changed); err != nil {
				return err
			}
		}
	}
}

// handle records a relevant event and reports whether it was kept.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	nodeModules := filepath.Join(w.root, "node_modules")
	if event.Name == nodeModules && event.Op&fsnotify.Create != 0 {
		w.addNodeModules()
	}
	if !w.Relevant(event.Name) {
		return false
	}

	w.mu.Lock()
	w.pending[event.Name] |= event.Op
	w.mu.Unlock()
	w.logger.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("change")
	return true
}

// Relevant reports whether a change to path can alter a composition.
func (w *Watcher) Relevant(path string) bool {
	dir, base := filepath.Split(path)
	dir = filepath.Clean(dir)

	switch dir {
	case filepath.Clean(w.root):
		return w.names[base] || base == "node_modules"
	case filepath.Join(w.root, "node_modules"):
		for _, m := range installMarkers {
			if base == m {
				return true
			}
		}
	}
	return false
}

func (w *Watcher) addNodeModules() {
	dir := filepath.Join(w.root, "node_modules")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	if err := w.fsw.Add(dir); err != nil {
		w.logger.Debug().Err(err).Str("dir", dir).Msg("cannot watch node_modules")
	}
}

func (w *Watcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := make([]string, 0, len(w.pending))
	for p := range w.pending {
		changed = append(changed, p)
	}
	w.pending = make(map[string]fsnotify.Op)
	sort.Strings(changed)
	return changed
}

// Close releases the watcher without running it. Safe after Run.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
