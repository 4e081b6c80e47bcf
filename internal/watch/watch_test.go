package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isExport(path string) bool { return strings.HasSuffix(path, ".adoc.json") }

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}
	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}

func TestWatcher_Relevant(t *testing.T) {
	w := &Watcher{match: isExport}
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to export", fsnotify.Event{Name: "a.adoc.json", Op: fsnotify.Write}, true},
		{"create export", fsnotify.Event{Name: "a.adoc.json", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "a.adoc.json", Op: fsnotify.Chmod}, false},
		{"unmatched file", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "guide.adoc.json")
	if err := os.WriteFile(target, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(quietLogger(), 30*time.Millisecond, isExport)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, []string{dir}, func(context.Context) error {
			changed <- struct{}{}
			return errors.New("logged, not returned")
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte(`{"blocks": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("onChange was not called")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatcher_WatchMissingPath(t *testing.T) {
	w, err := New(quietLogger(), 0, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	err = w.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, func(context.Context) error { return nil })
	if err == nil {
		t.Error("expected error for missing path")
	}
}
