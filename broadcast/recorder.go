package broadcast

import (
	"slices"
	"sync"

	"github.com/katalvlaran/lvpair/pairing"
)

// Recorder is a sink that keeps every event in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []pairing.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit stores e.
func (r *Recorder) Emit(e pairing.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []pairing.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.events)
}

// PairMessages returns the messages of the LevelPair events, sorted by
// left item index.
func (r *Recorder) PairMessages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairs := make([]pairing.Event, 0, len(r.events))
	for _, e := range r.events {
		if e.Level == pairing.LevelPair {
			pairs = append(pairs, e)
		}
	}
	slices.SortStableFunc(pairs, func(a, b pairing.Event) int { return a.Index - b.Index })

	msgs := make([]string, len(pairs))
	for i, e := range pairs {
		msgs[i] = e.Message
	}

	return msgs
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}
