package form

import "time"

// EventKind tags session events handed to a Tracker.
type EventKind string

const (
	EventSet           EventKind = "set"
	EventSubmit        EventKind = "submit"
	EventSubmitBlocked EventKind = "submit-blocked"
	EventReset         EventKind = "reset"
)

// Event is one session happening: a value change, a submit attempt, or a
// reset. Message carries the field's failure message for set events and the
// summary for blocked submits.
type Event struct {
	Kind    EventKind
	FieldID string
	Value   any
	Message string
	At      time.Time
}

// Tracker observes session events. Implementations must be cheap; they run
// inline on the session's thread.
type Tracker interface {
	Record(Event)
}

type nopTracker struct{}

func (nopTracker) Record(Event) {}

// NopTracker discards all events. It is the default.
func NopTracker() Tracker { return nopTracker{} }

// MemoryTracker retains events in order, for tests and audit trails. Not
// safe for concurrent use, same as the Controller it observes.
type MemoryTracker struct {
	events []Event
}

// NewMemoryTracker returns an empty in-memory tracker.
func NewMemoryTracker() *MemoryTracker { return &MemoryTracker{} }

// Record appends the event, stamping At if the caller left it zero.
func (m *MemoryTracker) Record(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	m.events = append(m.events, ev)
}

// Events returns the recorded events in arrival order.
func (m *MemoryTracker) Events() []Event { return m.events }
