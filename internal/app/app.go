// Package app wires the document pipeline together: openers, the
// packer, the job runner, history and retention.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sheaf-tools/sheaf/internal/archive"
	"github.com/sheaf-tools/sheaf/internal/cliconfig"
	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/internal/history"
	"github.com/sheaf-tools/sheaf/internal/job"
	"github.com/sheaf-tools/sheaf/internal/pdf"
	"github.com/sheaf-tools/sheaf/internal/watch"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

// App holds the assembled pipeline for one process lifetime.
type App struct {
	cfg    cliconfig.Config
	log    log.Logger
	runner *job.Runner
	store  *history.Store
	sweep  *job.Sweeper
}

// New validates cfg and assembles the pipeline. Call Close when done.
func New(cfg cliconfig.Config, logger log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNoop()
	}

	packer, err := archive.NewPacker(cfg.ZipLevel)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: logger}

	opts := []job.Option{job.WithWorkers(cfg.Workers)}
	if cfg.HistoryPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryPath), 0o755); err != nil {
			return nil, fmt.Errorf("history dir: %w", err)
		}
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		a.store = store
		opts = append(opts, job.WithHistory(store))
	}

	sink := job.NewLogSink(logger)
	a.runner = job.NewRunner(pdf.Opener{}, packer, sink, logger, opts...)

	a.sweep = job.NewSweeper(cfg.WorkDir, job.SweepConfig{
		Interval:  cfg.SweepInterval,
		Retention: cfg.Retention,
	}, logger)

	return a, nil
}

// RunOnce processes the given input files as a single job and returns
// its summary.
func (a *App) RunOnce(ctx context.Context, inputs []string) (domain.Summary, error) {
	j, err := job.New(a.cfg.WorkDir, inputs, a.cfg.Compress)
	if err != nil {
		return domain.Summary{}, err
	}
	j.MetricsOnly = a.cfg.MetricsOnly
	return a.runner.Run(ctx, j)
}

// Watch blocks on the configured drop directory, running a job for
// every PDF that settles, until the context is cancelled.
func (a *App) Watch(ctx context.Context) error {
	if a.cfg.WatchDir == "" {
		return fmt.Errorf("sheaf: watch directory not configured")
	}

	a.sweep.Start(ctx)
	defer a.sweep.Stop()

	w := watch.New(a.cfg.WatchDir, a.cfg.SettleDelay, func(path string) {
		if _, err := a.RunOnce(ctx, []string{path}); err != nil {
			a.log.Error("job failed", log.String("input", path), log.Err(err))
		}
	}, a.log)

	err := w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// History returns recent job records, newest first. Returns nil when
// history is disabled.
func (a *App) History(ctx context.Context, limit int) ([]history.JobRecord, error) {
	if a.store == nil {
		return nil, nil
	}
	return a.store.Recent(ctx, limit)
}

// SweepOnce removes expired job directories immediately.
func (a *App) SweepOnce() int {
	return a.sweep.SweepOnce()
}

// Close releases held resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
