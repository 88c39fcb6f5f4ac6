package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) submit(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

func TestWatcherSubmitsSettledPDF(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	w := New(dir, 100*time.Millisecond, rec.submit, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)

	pdfPath := filepath.Join(dir, "folha_123.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Files that are not PDFs must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if len(rec.snapshot()) > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	got := rec.snapshot()
	if len(got) != 1 || got[0] != pdfPath {
		t.Errorf("submitted = %v, want [%s]", got, pdfPath)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcherDebouncesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	w := New(dir, 200*time.Millisecond, rec.submit, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)

	pdfPath := filepath.Join(dir, "burst.pdf")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(pdfPath, []byte("chunk"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		time.Sleep(30 * time.Millisecond)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if len(rec.snapshot()) > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if got := rec.snapshot(); len(got) != 1 {
		t.Errorf("submitted %d times, want exactly 1 after the burst settles", len(got))
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "absent"), time.Second, func(string) {}, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
