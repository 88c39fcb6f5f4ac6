// Package job orchestrates split runs: splitting source documents into
// named per-page artifacts, bundling them into an archive, and reporting
// progress and outcome.
package job

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

// processedDirName is the directory under the job dir that receives page
// artifacts, one subdirectory per source file.
const processedDirName = "processed"

// Job is a single split invocation: a set of input files, a private
// working directory and the compression mode.
type Job struct {
	// ID is a short unique job identifier.
	ID string

	// Inputs are the source document paths.
	Inputs []string

	// Dir is the job's private working directory.
	Dir string

	// Compress selects the smaller, web-optimized page serialization.
	Compress bool

	// MetricsOnly runs the whole pipeline without writing artifacts,
	// reporting throughput and peak memory instead.
	MetricsOnly bool
}

// New creates a job with a fresh working directory under workRoot.
func New(workRoot string, inputs []string, compress bool) (*Job, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoInputs
	}

	id := newID()
	dir := filepath.Join(workRoot, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create job dir: %w", err)
	}

	return &Job{
		ID:       id,
		Inputs:   inputs,
		Dir:      dir,
		Compress: compress,
	}, nil
}

// ProcessedDir returns the directory receiving page artifacts.
func (j *Job) ProcessedDir() string {
	return filepath.Join(j.Dir, processedDirName)
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
