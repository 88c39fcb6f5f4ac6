package domain

// EventType identifies a job progress event.
type EventType string

const (
	// EventFileStart is emitted when a source file begins processing.
	EventFileStart EventType = "file_start"

	// EventPageDone is emitted after each page artifact is produced.
	EventPageDone EventType = "page_done"

	// EventFileDone is emitted when a source file finishes.
	EventFileDone EventType = "file_done"

	// EventFinished is emitted once when the whole job completes.
	EventFinished EventType = "finished"

	// EventCancelled is emitted when a job stops early on cancellation.
	EventCancelled EventType = "cancelled"

	// EventError is emitted when a job fails.
	EventError EventType = "error"

	// EventMetric is emitted at the end of a metric run.
	EventMetric EventType = "metric"
)

// Event is a progress notification emitted while a job runs.
// Only the fields relevant to the event type are populated.
type Event struct {
	Type  EventType `json:"event"`
	JobID string    `json:"job_id"`

	// File is the source file base name for file/page events.
	File string `json:"file,omitempty"`

	// Page is the 1-based page number for page events.
	Page int `json:"page,omitempty"`

	// Pages is the page count for file_start and metric events.
	Pages int `json:"pages,omitempty"`

	// Name is the derived artifact name for page_done events.
	Name string `json:"new_name,omitempty"`

	// Message carries the failure description for error events.
	Message string `json:"message,omitempty"`

	// Summary is attached to finished, cancelled and metric events.
	Summary *Summary `json:"summary,omitempty"`
}
