package job

import (
	"sync"

	"github.com/sheaf-tools/sheaf/internal/domain"
	"github.com/sheaf-tools/sheaf/internal/ports"
	"github.com/sheaf-tools/sheaf/pkg/log"
)

// LogSink writes job progress events to the structured logger.
type LogSink struct {
	log log.Logger
}

// NewLogSink creates a sink that logs progress events.
func NewLogSink(logger log.Logger) *LogSink {
	return &LogSink{log: logger}
}

// Emit implements ports.EventSink.
func (s *LogSink) Emit(ev domain.Event) {
	switch ev.Type {
	case domain.EventFileStart:
		s.log.Info("file start", log.String("file", ev.File), log.Int("pages", ev.Pages))
	case domain.EventPageDone:
		s.log.Debug("page done",
			log.String("file", ev.File), log.Int("page", ev.Page), log.String("name", ev.Name))
	case domain.EventFileDone:
		s.log.Info("file done", log.String("file", ev.File), log.Int("pages", ev.Pages))
	case domain.EventError:
		s.log.Error("job error", log.String("job", ev.JobID), log.String("message", ev.Message))
	case domain.EventCancelled:
		s.log.Warn("job cancelled", log.String("job", ev.JobID))
	default:
		s.log.Info(string(ev.Type), log.String("job", ev.JobID))
	}
}

// MemorySink records events for later inspection. It buffers everything
// until drained, so no progress is lost before a consumer attaches.
type MemorySink struct {
	mu     sync.Mutex
	events []domain.Event
	notify func(domain.Event)
}

// NewMemorySink creates an empty recording sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Notify registers a callback invoked synchronously on every event.
func (s *MemorySink) Notify(fn func(domain.Event)) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Emit implements ports.EventSink.
func (s *MemorySink) Emit(ev domain.Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	fn := s.notify
	s.mu.Unlock()

	if fn != nil {
		fn(ev)
	}
}

// Events returns a copy of everything recorded so far.
func (s *MemorySink) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Drain returns the recorded events and clears the buffer.
func (s *MemorySink) Drain() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.events
	s.events = nil
	return out
}

// MultiSink fans events out to several sinks.
type MultiSink []ports.EventSink

// Emit implements ports.EventSink.
func (m MultiSink) Emit(ev domain.Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}
