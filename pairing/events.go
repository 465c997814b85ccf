package pairing

// Level is the severity of an Event.
type Level int8

const (
	// LevelDebug marks coarse-grained progress events.
	LevelDebug Level = iota

	// LevelPair marks the event emitted for every created pair.
	LevelPair
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Event is a single observation emitted during a pairing run.
type Event struct {
	Level   Level
	Message string

	// Index is the left item index the event refers to, -1 for run-level events.
	Index int

	// Processed and Total count left items; set on LevelDebug events.
	Processed int
	Total     int
}

// Sink is the write-only collaborator receiving run events.
// A run never inspects what a sink does with an event. Sinks used with
// WithWorkers(n > 1) must be safe for concurrent use.
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(e Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// NopSink discards every event.
var NopSink Sink = nopSink{}

type nopSink struct{}

func (nopSink) Emit(Event) {}
