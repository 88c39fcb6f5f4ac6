package job

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sheaf-tools/sheaf/pkg/log"
)

// SweepConfig controls retention of finished job directories.
type SweepConfig struct {
	// Interval is how often the work root is checked.
	Interval time.Duration

	// Retention is how long a job directory is kept after its last
	// modification.
	Retention time.Duration
}

// DefaultSweepConfig returns sensible retention defaults.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Interval:  time.Hour,
		Retention: 24 * time.Hour,
	}
}

// Sweeper periodically deletes expired job directories under the work
// root, keeping disk usage bounded for long-lived watch agents.
type Sweeper struct {
	root string
	cfg  SweepConfig
	log  log.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweeper creates a sweeper for the given work root.
func NewSweeper(root string, cfg SweepConfig, logger log.Logger) *Sweeper {
	if logger == nil {
		logger = log.NewNoop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSweepConfig().Interval
	}
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultSweepConfig().Retention
	}
	return &Sweeper{root: root, cfg: cfg, log: logger}
}

// Start launches the background sweep loop. An immediate sweep runs on
// startup.
func (s *Sweeper) Start(ctx context.Context) {
	sweepCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.SweepOnce()

		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				s.SweepOnce()
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// SweepOnce deletes every job directory older than the retention period.
// Returns the number of directories removed.
func (s *Sweeper) SweepOnce() int {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("sweep work root", log.String("root", s.root), log.Err(err))
		}
		return 0
	}

	removed := 0
	cutoff := time.Now().Add(-s.cfg.Retention)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		dir := filepath.Join(s.root, e.Name())
		if err := os.RemoveAll(dir); err != nil {
			s.log.Warn("remove expired job dir", log.String("dir", dir), log.Err(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		s.log.Info("swept expired job dirs", log.Int("removed", removed))
	}
	return removed
}
