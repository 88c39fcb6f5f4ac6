package job

import (
	"os"
	"testing"
	"time"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := domain.Summary{
		JobID:           "abc123",
		Pages:           7,
		Renamed:         5,
		Manual:          2,
		OriginalBytes:   1000,
		CompressedBytes: 400,
		ArchivePath:     "/tmp/out.zip",
		Duration:        3 * time.Second,
	}

	if err := WriteManifest(dir, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := os.Stat(ManifestPath(dir) + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file must not survive a successful write")
	}

	got, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.JobID != want.JobID || got.Pages != want.Pages ||
		got.CompressedBytes != want.CompressedBytes || got.Duration != want.Duration {
		t.Errorf("manifest = %+v, want %+v", got, want)
	}
}

func TestReadManifestMissing(t *testing.T) {
	got, err := ReadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.JobID != "" {
		t.Errorf("expected empty summary, got %+v", got)
	}
}

func TestSummaryAddAndRatio(t *testing.T) {
	var s domain.Summary
	s.Add(domain.FileStats{File: "a", Pages: 2, Renamed: 1, Manual: 1,
		OriginalBytes: 600, CompressedBytes: 300, ManualPages: []string{"page 2 of a.pdf"}})
	s.Add(domain.FileStats{File: "b", Pages: 3, Renamed: 3,
		OriginalBytes: 400, CompressedBytes: 200})

	if s.Pages != 5 || s.Renamed != 4 || s.Manual != 1 {
		t.Errorf("totals = %d/%d/%d, want 5/4/1", s.Pages, s.Renamed, s.Manual)
	}
	if got := s.SavedRatio(); got != 50 {
		t.Errorf("SavedRatio = %v, want 50", got)
	}

	var empty domain.Summary
	if got := empty.SavedRatio(); got != 0 {
		t.Errorf("empty SavedRatio = %v, want 0", got)
	}
}
