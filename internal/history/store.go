// Package history persists completed job summaries in a local sqlite
// database, so past bundles can be listed and re-downloaded.
package history

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

// JobRecord is one finished job in the history database.
type JobRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Status string `json:"status"`

	Files   int `json:"files"`
	Pages   int `json:"pages"`
	Renamed int `json:"renamed"`
	Manual  int `json:"manual"`

	OriginalBytes   int64   `json:"original_bytes"`
	CompressedBytes int64   `json:"compressed_bytes"`
	SavedRatio      float64 `json:"saved_ratio"`

	ArchivePath string `json:"archive_path"`
	DurationMS  int64  `json:"duration_ms"`
}

// Store wraps the history database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the history database at path and
// migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&JobRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record stores the outcome of a finished job.
func (s *Store) Record(ctx context.Context, sum domain.Summary, status string) error {
	rec := JobRecord{
		ID:              sum.JobID,
		Status:          status,
		Files:           len(sum.Files),
		Pages:           sum.Pages,
		Renamed:         sum.Renamed,
		Manual:          sum.Manual,
		OriginalBytes:   sum.OriginalBytes,
		CompressedBytes: sum.CompressedBytes,
		SavedRatio:      sum.SavedRatio(),
		ArchivePath:     sum.ArchivePath,
		DurationMS:      sum.Duration.Milliseconds(),
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]JobRecord, error) {
	var recs []JobRecord
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
