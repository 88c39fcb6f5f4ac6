package domain

import "time"

// FileStats is the per-source-file outcome of a split run.
type FileStats struct {
	// File is the source file base name without extension.
	File string `json:"file"`

	// Pages is the number of pages in the source document.
	Pages int `json:"pages"`

	// Renamed counts pages whose name was recovered from page text.
	Renamed int `json:"renamed"`

	// Manual counts pages that fell back to a MANUAL_ placeholder name.
	Manual int `json:"manual"`

	// ManualPages lists human-readable references to the manual pages.
	ManualPages []string `json:"manual_pages,omitempty"`

	// OriginalBytes is the source file size.
	OriginalBytes int64 `json:"original_bytes"`

	// CompressedBytes is the total size of the page artifacts written.
	CompressedBytes int64 `json:"compressed_bytes"`
}

// Summary is the aggregate outcome of a whole job.
// It maintains the invariant that the totals equal the sums over Files.
type Summary struct {
	JobID string `json:"job_id"`

	Files []FileStats `json:"files"`

	Pages       int      `json:"pages"`
	Renamed     int      `json:"renamed"`
	Manual      int      `json:"manual"`
	ManualPages []string `json:"manual_pages,omitempty"`

	OriginalBytes   int64 `json:"original_bytes"`
	CompressedBytes int64 `json:"compressed_bytes"`

	// ArchivePath is the final bundle location, empty for metric runs.
	ArchivePath string `json:"archive_path,omitempty"`

	Cancelled bool          `json:"cancelled"`
	Duration  time.Duration `json:"duration"`

	// PeakHeapBytes is the peak in-use heap observed during a metric run.
	PeakHeapBytes uint64 `json:"peak_heap_bytes,omitempty"`
}

// Add folds one file's stats into the summary totals.
func (s *Summary) Add(fs FileStats) {
	s.Files = append(s.Files, fs)
	s.Pages += fs.Pages
	s.Renamed += fs.Renamed
	s.Manual += fs.Manual
	s.ManualPages = append(s.ManualPages, fs.ManualPages...)
	s.OriginalBytes += fs.OriginalBytes
	s.CompressedBytes += fs.CompressedBytes
}

// SavedRatio returns the percentage of bytes saved by compression.
// Returns 0 when no original bytes were counted.
func (s Summary) SavedRatio() float64 {
	if s.OriginalBytes <= 0 {
		return 0
	}
	return float64(s.OriginalBytes-s.CompressedBytes) / float64(s.OriginalBytes) * 100
}
