package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := domain.Summary{
		JobID:           "job-one",
		Files:           []domain.FileStats{{File: "a"}, {File: "b"}},
		Pages:           10,
		Renamed:         8,
		Manual:          2,
		OriginalBytes:   2000,
		CompressedBytes: 1000,
		ArchivePath:     "/work/job-one/100.zip",
		Duration:        1500 * time.Millisecond,
	}
	require.NoError(t, s.Record(ctx, first, "finished"))

	second := domain.Summary{JobID: "job-two", Pages: 1, Cancelled: true}
	require.NoError(t, s.Record(ctx, second, "cancelled"))

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	byID := map[string]JobRecord{}
	for _, r := range recs {
		byID[r.ID] = r
	}

	one := byID["job-one"]
	assert.Equal(t, "finished", one.Status)
	assert.Equal(t, 2, one.Files)
	assert.Equal(t, 10, one.Pages)
	assert.Equal(t, 8, one.Renamed)
	assert.Equal(t, 2, one.Manual)
	assert.InDelta(t, 50.0, one.SavedRatio, 0.001)
	assert.Equal(t, int64(1500), one.DurationMS)
	assert.Equal(t, "/work/job-one/100.zip", one.ArchivePath)

	assert.Equal(t, "cancelled", byID["job-two"].Status)
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"j1", "j2", "j3"} {
		require.NoError(t, s.Record(ctx, domain.Summary{JobID: id, Pages: i}, "finished"))
	}

	recs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
