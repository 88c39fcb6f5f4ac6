package ports

import "github.com/sheaf-tools/sheaf/internal/domain"

// EventSink receives job progress events.
//
// Emit is called from worker goroutines; implementations must be safe for
// concurrent use. Sinks must not block the job for long: slow consumers
// should buffer.
type EventSink interface {
	Emit(ev domain.Event)
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(ev domain.Event)

// Emit calls f(ev).
func (f EventSinkFunc) Emit(ev domain.Event) { f(ev) }
