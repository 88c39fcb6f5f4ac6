// Package watch monitors a drop directory and submits PDFs that land in
// it once they have stopped changing.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sheaf-tools/sheaf/pkg/log"
)

// DefaultSettleDelay is how long a file must stay quiet before it is
// considered fully written. Copies into the drop dir arrive as a burst
// of write events.
const DefaultSettleDelay = 2 * time.Second

// Watcher monitors a directory for incoming PDF files.
type Watcher struct {
	dir    string
	settle time.Duration
	submit func(path string)
	log    log.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New returns a watcher over dir that calls submit for every PDF that
// settles. A non-positive settle falls back to DefaultSettleDelay.
func New(dir string, settle time.Duration, submit func(path string), logger log.Logger) *Watcher {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Watcher{
		dir:     dir,
		settle:  settle,
		submit:  submit,
		log:     logger,
		pending: make(map[string]*time.Timer),
	}
}

// Run watches the directory until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.log.Info("watching drop directory",
		log.String("dir", w.dir),
		log.Duration("settle", w.settle))

	for {
		select {
		case <-ctx.Done():
			w.drainPending()
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isPDF(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.touch(event.Name)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", log.Err(err))
		}
	}
}

// touch resets the settle timer for path. The submit callback fires
// only once the file has been quiet for the full settle window.
func (w *Watcher) touch(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.submit(path)
	})
}

func (w *Watcher) drainPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
