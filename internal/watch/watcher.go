// Package watch reports new and changed description files in a directory.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hammamikhairi/ottodish/internal/logger"
)

// Event is a settled change to one matching file.
type Event struct {
	Path    string
	Removed bool
}

// Handler is called from the watcher goroutine for every settled event.
type Handler func(ctx context.Context, ev Event)

// Option configures the watcher.
type Option func(*Watcher)

// WithPattern sets the file name glob to react to. Default "*.txt".
func WithPattern(p string) Option {
	return func(w *Watcher) {
		w.pattern = p
	}
}

// WithDebounce sets how long a file must stay quiet before its event is
// delivered. Editors often write a file in several steps. Default 200ms.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithInitialScan delivers an event for every matching file already in the
// directory before watching starts.
func WithInitialScan() Option {
	return func(w *Watcher) {
		w.initialScan = true
	}
}

// Watcher watches a single directory (not recursive) and calls a handler
// for files whose name matches the pattern.
type Watcher struct {
	dir         string
	pattern     string
	debounce    time.Duration
	initialScan bool
	handler     Handler
	log         *logger.Logger

	fs      *fsnotify.Watcher
	pending map[string]pendingEvent
}

type pendingEvent struct {
	at      time.Time
	removed bool
}

// New creates a watcher for dir. Call Run to start it.
func New(dir string, handler Handler, log *logger.Logger, opts ...Option) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	w := &Watcher{
		dir:      dir,
		pattern:  "*.txt",
		debounce: 200 * time.Millisecond,
		handler:  handler,
		log:      log.Named("watch"),
		pending:  make(map[string]pendingEvent),
	}
	for _, opt := range opts {
		opt(w)
	}

	if _, err := filepath.Match(w.pattern, ""); err != nil {
		return nil, fmt.Errorf("watch: pattern %q: %w", w.pattern, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch: %s is not a directory", dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.fs = fw
	return w, nil
}

// Run delivers events until ctx is cancelled, then closes the underlying
// watcher. Intended to be called as a goroutine or as the last call of a
// command.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	if w.initialScan {
		w.scan(ctx)
	}

	ticker := time.NewTicker(w.tick())
	defer ticker.Stop()

	w.log.Info("watching %s for %s (debounce=%s)", w.dir, w.pattern, w.debounce)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.record(ev)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify: %v", err)

		case <-ticker.C:
			w.flush(ctx, time.Now())
		}
	}
}

// record notes a raw fsnotify event for a matching file.
func (w *Watcher) record(ev fsnotify.Event) {
	if !w.matches(ev.Name) {
		return
	}
	var removed bool
	switch {
	case ev.Op.Has(fsnotify.Create), ev.Op.Has(fsnotify.Write):
		removed = false
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		removed = true
	default:
		return
	}
	w.log.Debug("%s %s", ev.Op, ev.Name)
	w.pending[ev.Name] = pendingEvent{at: time.Now(), removed: removed}
}

// flush delivers pending events that have been quiet for the debounce
// period, in path order.
func (w *Watcher) flush(ctx context.Context, now time.Time) {
	var ready []string
	for path, p := range w.pending {
		if now.Sub(p.at) >= w.debounce {
			ready = append(ready, path)
		}
	}
	sort.Strings(ready)
	for _, path := range ready {
		p := w.pending[path]
		delete(w.pending, path)
		w.handler(ctx, Event{Path: path, Removed: p.removed})
	}
}

// scan delivers an event for every matching file currently in the directory.
func (w *Watcher) scan(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.log.Error("initial scan: %v", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.dir, e.Name())
		if w.matches(path) {
			w.handler(ctx, Event{Path: path})
		}
	}
}

func (w *Watcher) matches(path string) bool {
	ok, _ := filepath.Match(w.pattern, filepath.Base(path))
	return ok
}

func (w *Watcher) tick() time.Duration {
	t := w.debounce / 2
	if t < 10*time.Millisecond {
		t = 10 * time.Millisecond
	}
	if t > 100*time.Millisecond {
		t = 100 * time.Millisecond
	}
	return t
}
