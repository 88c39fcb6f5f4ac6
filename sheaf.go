// Package sheaf splits multi-page PDF documents into per-page files,
// names each page from the text it carries, and bundles the results
// into a compressed archive.
//
// Example usage:
//
//	cfg := sheaf.DefaultConfig()
//	cfg.WorkDir = "/tmp/sheaf"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := sheaf.Run(context.Background(), cfg, nil, []string{"tuning.pdf"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.ArchivePath)
package sheaf

import (
	"context"

	"github.com/sheaf-tools/sheaf/internal/app"
	"github.com/sheaf-tools/sheaf/internal/cliconfig"
	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

// Config holds the pipeline configuration.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Summary reports the outcome of one job.
type Summary = domain.Summary

// Event is a progress notification emitted while a job runs.
type Event = domain.Event

// FileStats holds per-input totals inside a Summary.
type FileStats = domain.FileStats

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run processes the given PDF files as a single job and returns its
// summary. logger may be nil to run silently.
func Run(ctx context.Context, cfg Config, logger log.Logger, inputs []string) (Summary, error) {
	a, err := app.New(cfg, logger)
	if err != nil {
		return Summary{}, err
	}
	defer a.Close()
	return a.RunOnce(ctx, inputs)
}

// Watch blocks on cfg.WatchDir, running a job for every PDF dropped
// there, until the context is cancelled.
func Watch(ctx context.Context, cfg Config, logger log.Logger) error {
	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Watch(ctx)
}
