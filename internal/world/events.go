package world

import "time"

// Event is one immutable entry in the world's chronological log.
type Event struct {
	Time         time.Time `json:"time"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Participants []string  `json:"participants,omitempty"`
}

// EventSink receives every event the world logs. The world never reads
// back from it; persistence format is the sink's concern.
type EventSink interface {
	Record(Event) error
}

// MemorySink buffers events in memory. Satisfies tests and runs without a
// database.
type MemorySink struct {
	events []Event
}

// Record appends the event. Never fails.
func (s *MemorySink) Record(ev Event) error {
	s.events = append(s.events, ev)
	return nil
}

// Events returns a copy of everything recorded so far.
func (s *MemorySink) Events() []Event {
	return append([]Event(nil), s.events...)
}
