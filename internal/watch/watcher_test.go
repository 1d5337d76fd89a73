package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hammamikhairi/ottodish/internal/logger"
)

// collector captures delivered events for assertions.
type collector struct {
	mu     sync.Mutex
	events []Event
	ch     chan Event
}

func newCollector() *collector {
	return &collector{ch: make(chan Event, 32)}
}

func (c *collector) handle(_ context.Context, ev Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
	c.ch <- ev
}

func (c *collector) next(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-c.ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestWatcherDeliversMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	col := newCollector()
	w, err := New(dir, col.handle, logger.New(logger.LevelOff, nil), WithDebounce(100*time.Millisecond))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "borsch.txt")
	if err := os.WriteFile(target, []byte("##БЛЮДО##"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := col.next(t)
	if ev.Path != target || ev.Removed {
		t.Fatalf("expected write event for %s, got %+v", target, ev)
	}

	if err := os.Remove(target); err != nil {
		t.Fatal(err)
	}
	ev = col.next(t)
	if ev.Path != target || !ev.Removed {
		t.Fatalf("expected remove event for %s, got %+v", target, ev)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := col.count(); n != 2 {
		t.Fatalf("expected 2 events, got %d", n)
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	col := newCollector()
	w, err := New(dir, col.handle, nil, WithInitialScan())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	first, second := col.next(t), col.next(t)
	if filepath.Base(first.Path) != "a.txt" || filepath.Base(second.Path) != "b.txt" {
		t.Fatalf("unexpected scan order: %s, %s", first.Path, second.Path)
	}

	cancel()
	<-done
}

func TestFlushDebounces(t *testing.T) {
	col := newCollector()
	w := &Watcher{
		pattern:  "*.txt",
		debounce: time.Second,
		handler:  col.handle,
		log:      logger.Nop(),
		pending:  make(map[string]pendingEvent),
	}

	w.record(fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Write})
	w.record(fsnotify.Event{Name: "/d/b.csv", Op: fsnotify.Write})
	w.record(fsnotify.Event{Name: "/d/c.txt", Op: fsnotify.Chmod})

	w.flush(context.Background(), time.Now())
	if col.count() != 0 {
		t.Fatal("event delivered before debounce elapsed")
	}

	w.flush(context.Background(), time.Now().Add(2*time.Second))
	if col.count() != 1 {
		t.Fatalf("expected 1 event after debounce, got %d", col.count())
	}
	if len(w.pending) != 0 {
		t.Fatalf("pending not drained: %v", w.pending)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	noop := func(context.Context, Event) {}

	if _, err := New(filepath.Join(t.TempDir(), "missing"), noop, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "f.txt")
	os.WriteFile(file, nil, 0o644)
	if _, err := New(file, noop, nil); err == nil {
		t.Fatal("expected error for non-directory")
	}

	if _, err := New(t.TempDir(), noop, nil, WithPattern("[")); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
