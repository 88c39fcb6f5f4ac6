package ports

import (
	"context"

	"github.com/sheaf-tools/sheaf/internal/domain"
)

// HistoryStore persists completed job summaries.
type HistoryStore interface {
	// Record stores the outcome of a finished job. status is one of
	// "finished", "cancelled" or "error".
	Record(ctx context.Context, s domain.Summary, status string) error
}
