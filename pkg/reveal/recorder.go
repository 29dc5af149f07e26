package reveal

import (
	"sync"
	"time"
)

// Sink receives style mutations for a component's elements.
type Sink interface {
	Apply(slot Slot, style Style)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(slot Slot, style Style)

func (f SinkFunc) Apply(slot Slot, style Style) { f(slot, style) }

// Mutation is one recorded style change.
type Mutation struct {
	At    time.Time
	Slot  Slot
	Style Style
}

// Recorder is a Sink that keeps every mutation, stamped with clock time.
type Recorder struct {
	clock Clock

	mu        sync.Mutex
	mutations []Mutation
}

// NewRecorder returns a recorder reading timestamps from clock.
func NewRecorder(clock Clock) *Recorder {
	return &Recorder{clock: clock}
}

func (r *Recorder) Apply(slot Slot, style Style) {
	var at time.Time
	if r.clock != nil {
		at = r.clock.Now()
	}
	r.mu.Lock()
	r.mutations = append(r.mutations, Mutation{At: at, Slot: slot, Style: style})
	r.mu.Unlock()
}

// Mutations returns a copy of everything recorded so far.
func (r *Recorder) Mutations() []Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Mutation, len(r.mutations))
	copy(out, r.mutations)
	return out
}

// Len returns the number of recorded mutations.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.mutations)
}

// Last returns the most recent style applied to slot.
func (r *Recorder) Last(slot Slot) (Style, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.mutations) - 1; i >= 0; i-- {
		if r.mutations[i].Slot == slot {
			return r.mutations[i].Style, true
		}
	}
	return Style{}, false
}
