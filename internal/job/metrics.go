package job

import (
	"context"
	"runtime"
	"time"

	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

const samplerInterval = 50 * time.Millisecond

// runMetric executes the whole pipeline without writing artifacts,
// measuring throughput and peak heap usage instead.
func (r *Runner) runMetric(ctx context.Context, job *Job, start time.Time) (domain.Summary, error) {
	summary := domain.Summary{JobID: job.ID}

	sampler := startHeapSampler(samplerInterval)
	runErr := r.collect(ctx, job, "", &summary)
	summary.PeakHeapBytes = sampler.stopAndPeak()
	summary.Duration = time.Since(start)
	summary.Cancelled = ctx.Err() != nil

	if runErr != nil && !summary.Cancelled {
		r.fail(ctx, job, &summary, runErr)
		return summary, runErr
	}

	r.record(ctx, summary, "metric")
	r.sink.Emit(domain.Event{
		Type:    domain.EventMetric,
		JobID:   job.ID,
		Pages:   summary.Pages,
		Summary: &summary,
	})

	r.log.Info("metric run done",
		log.String("job", job.ID),
		log.Int("pages", summary.Pages),
		log.Duration("took", summary.Duration),
		log.Any("peak_heap_bytes", summary.PeakHeapBytes))

	return summary, nil
}

// heapSampler polls the runtime for in-use heap while a metric run
// executes and remembers the peak.
type heapSampler struct {
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	peak     uint64
}

func startHeapSampler(interval time.Duration) *heapSampler {
	s := &heapSampler{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *heapSampler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sample()
	for {
		select {
		case <-s.stop:
			s.sample()
			return
		case <-ticker.C:
			s.sample()
		}
	}
}

func (s *heapSampler) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.HeapInuse > s.peak {
		s.peak = m.HeapInuse
	}
}

// stopAndPeak terminates sampling and returns the observed peak.
func (s *heapSampler) stopAndPeak() uint64 {
	close(s.stop)
	<-s.done
	return s.peak
}
