package job

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/internal/naming"
	"github.com/sheaf-tools/sheaf/internal/ports"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

// PartialArchiveName is the bundle name used when a job is cancelled and
// only part of the output was produced.
const PartialArchiveName = "partial.zip"

// Runner executes jobs against the configured document, archive and
// history adapters. A Runner is safe for concurrent use; each Run call
// owns its job's working directory.
type Runner struct {
	opener  ports.DocumentOpener
	packer  ports.Packer
	sink    ports.EventSink
	history ports.HistoryStore
	log     log.Logger
	workers int
}

// Option configures a Runner.
type Option func(*Runner)

// WithHistory records finished jobs in the given store.
func WithHistory(h ports.HistoryStore) Option {
	return func(r *Runner) { r.history = h }
}

// WithWorkers sets the number of source files processed concurrently.
// Zero or negative selects a CPU-based default.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// NewRunner creates a Runner. sink may be nil to discard events.
func NewRunner(opener ports.DocumentOpener, packer ports.Packer, sink ports.EventSink, logger log.Logger, opts ...Option) *Runner {
	if sink == nil {
		sink = ports.EventSinkFunc(func(domain.Event) {})
	}
	if logger == nil {
		logger = log.NewNoop()
	}
	r := &Runner{
		opener: opener,
		packer: packer,
		sink:   sink,
		log:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the job and returns its summary.
//
// Cancellation is cooperative: when ctx is cancelled mid-run, the pages
// produced so far are still bundled (as PartialArchiveName), the summary
// is marked Cancelled, and Run returns a nil error. Processing failures
// abort the job and propagate unchanged.
func (r *Runner) Run(ctx context.Context, job *Job) (domain.Summary, error) {
	start := time.Now()

	if job.MetricsOnly {
		return r.runMetric(ctx, job, start)
	}

	summary := domain.Summary{JobID: job.ID}
	procDir := job.ProcessedDir()
	if err := os.MkdirAll(procDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	runErr := r.collect(ctx, job, procDir, &summary)
	summary.Cancelled = errors.Is(ctx.Err(), context.Canceled)

	if runErr != nil && !summary.Cancelled {
		r.fail(ctx, job, &summary, runErr)
		return summary, runErr
	}

	name := naming.ArchiveName(baseNames(job.Inputs))
	if summary.Cancelled {
		name = PartialArchiveName
	}

	archivePath, err := r.packer.Pack(procDir, filepath.Join(job.Dir, name))
	if err != nil {
		err = fmt.Errorf("bundle job %s: %w", job.ID, err)
		r.fail(ctx, job, &summary, err)
		return summary, err
	}
	summary.ArchivePath = archivePath
	summary.Duration = time.Since(start)

	if err := WriteManifest(job.Dir, summary); err != nil {
		r.log.Warn("write job manifest", log.String("job", job.ID), log.Err(err))
	}

	status, evType := "finished", domain.EventFinished
	if summary.Cancelled {
		status, evType = "cancelled", domain.EventCancelled
	}
	r.record(ctx, summary, status)
	r.sink.Emit(domain.Event{Type: evType, JobID: job.ID, Summary: &summary})

	r.log.Info("job done",
		log.String("job", job.ID),
		log.String("status", status),
		log.Int("pages", summary.Pages),
		log.Int("renamed", summary.Renamed),
		log.Int("manual", summary.Manual),
		log.Float64("saved_pct", summary.SavedRatio()),
		log.Duration("took", summary.Duration))

	return summary, nil
}

// collect runs the worker pool and folds results into the summary.
// Partial stats from cancelled files are kept; the first real failure is
// returned.
func (r *Runner) collect(ctx context.Context, job *Job, procDir string, summary *domain.Summary) error {
	var firstErr error
	for _, res := range r.processAll(ctx, job, procDir) {
		if res.err != nil && !errors.Is(res.err, context.Canceled) {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		summary.Add(res.stats)
	}
	return firstErr
}

func (r *Runner) fail(ctx context.Context, job *Job, summary *domain.Summary, err error) {
	r.record(ctx, *summary, "error")
	r.sink.Emit(domain.Event{Type: domain.EventError, JobID: job.ID, Message: err.Error()})
	r.log.Error("job failed", log.String("job", job.ID), log.Err(err))
}

// record persists the summary to history, if configured. Uses a context
// detached from cancellation so cancelled jobs are still recorded.
func (r *Runner) record(ctx context.Context, summary domain.Summary, status string) {
	if r.history == nil {
		return
	}
	if err := r.history.Record(context.WithoutCancel(ctx), summary, status); err != nil {
		r.log.Warn("record job history", log.String("job", summary.JobID), log.Err(err))
	}
}

func baseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func baseName(path string) string {
	b := filepath.Base(path)
	return strings.TrimSuffix(b, filepath.Ext(b))
}
