package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/internal/naming"
	"github.com/sheaf-tools/sheaf/internal/ports"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

// maxWorkers caps the pool regardless of CPU count; splitting is
// I/O-bound enough that more buys nothing.
const maxWorkers = 8

type fileResult struct {
	stats domain.FileStats
	err   error
}

// processAll runs the job's input files through a bounded worker pool.
// Pages within a file stay sequential; files run concurrently, each into
// its own output subdirectory.
func (r *Runner) processAll(ctx context.Context, job *Job, procDir string) []fileResult {
	n := r.workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	if n > len(job.Inputs) {
		n = len(job.Inputs)
	}

	work := make(chan string, len(job.Inputs))
	out := make(chan fileResult, len(job.Inputs))
	alloc := newDirAllocator(procDir)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				stats, err := r.processFile(ctx, job, path, alloc)
				out <- fileResult{stats: stats, err: err}
			}
		}()
	}

	for _, path := range job.Inputs {
		work <- path
	}
	close(work)
	wg.Wait()
	close(out)

	results := make([]fileResult, 0, len(job.Inputs))
	for res := range out {
		results = append(results, res)
	}
	return results
}

// processFile splits one source document into named page artifacts.
// On cancellation it returns the stats accumulated so far together with
// ctx.Err(), so partial work can still be bundled.
func (r *Runner) processFile(ctx context.Context, job *Job, path string, alloc *dirAllocator) (domain.FileStats, error) {
	base := baseName(path)
	stats := domain.FileStats{File: base}

	doc, err := r.opener.Open(path)
	if err != nil {
		return stats, fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	if info, err := os.Stat(path); err == nil {
		stats.OriginalBytes = info.Size()
	}

	total := doc.PageCount()
	stats.Pages = total
	r.sink.Emit(domain.Event{Type: domain.EventFileStart, JobID: job.ID, File: base, Pages: total})

	var outDir string
	if !job.MetricsOnly {
		outDir, err = alloc.alloc(base)
		if err != nil {
			return stats, err
		}
	}

	for page := 1; page <= total; page++ {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		name, manual := r.pageName(doc, base, page)
		if manual {
			stats.Manual++
			stats.ManualPages = append(stats.ManualPages, fmt.Sprintf("page %d of %s.pdf", page, base))
		} else {
			stats.Renamed++
		}

		if !job.MetricsOnly {
			data, err := doc.SerializePage(page, job.Compress)
			if err != nil {
				return stats, fmt.Errorf("serialize page %d of %s: %w", page, base, err)
			}
			outPath := uniquePath(outDir, name)
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return stats, fmt.Errorf("write %s: %w", outPath, err)
			}
			stats.CompressedBytes += int64(len(data))
		}

		r.sink.Emit(domain.Event{Type: domain.EventPageDone, JobID: job.ID, File: base, Page: page, Name: name})
	}

	r.sink.Emit(domain.Event{Type: domain.EventFileDone, JobID: job.ID, File: base, Pages: total})
	return stats, nil
}

// pageName derives the artifact name for a page. Pages whose text yields
// no usable name fall back to a MANUAL_ placeholder for hand review.
func (r *Runner) pageName(doc ports.Document, base string, page int) (string, bool) {
	text, err := doc.PageText(page)
	if err != nil {
		r.log.Debug("text extraction failed",
			log.String("file", base), log.Int("page", page), log.Err(err))
		text = ""
	}

	clean := naming.CleanText(text)
	if raw, found := naming.ExtractName(clean, text); found {
		if name, ok := naming.SanitizeTokens(raw); ok {
			return naming.SanitizeFilename(name), false
		}
	}
	return naming.SanitizeFilename(fmt.Sprintf("MANUAL_%s_%d", base, page)), true
}

// uniquePath appends _1, _2, ... until the name is free in dir.
func uniquePath(dir, name string) string {
	outPath := filepath.Join(dir, name+".pdf")
	for k := 1; ; k++ {
		if _, err := os.Stat(outPath); os.IsNotExist(err) {
			return outPath
		}
		outPath = filepath.Join(dir, fmt.Sprintf("%s_%d.pdf", name, k))
	}
}

// dirAllocator hands out per-file output directories, suffixing
// duplicates so two inputs with the same base name never share one.
type dirAllocator struct {
	root string

	mu    sync.Mutex
	taken map[string]int
}

func newDirAllocator(root string) *dirAllocator {
	return &dirAllocator{root: root, taken: map[string]int{}}
}

func (a *dirAllocator) alloc(base string) (string, error) {
	a.mu.Lock()
	n := a.taken[base]
	a.taken[base] = n + 1
	a.mu.Unlock()

	name := base
	if n > 0 {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	dir := filepath.Join(a.root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}
