package readiness

import (
	"sync/atomic"
)

// State is the readiness flag of a single component instance. The zero value
// is not ready. Once set, the flag stays set.
type State struct {
	ready atomic.Bool
}

func NewState() *State {
	return new(State)
}

func (s *State) IsReady() bool {
	return s.ready.Load()
}

// markReady sets the flag and reports whether this call flipped it.
func (s *State) markReady() bool {
	return s.ready.CompareAndSwap(false, true)
}

// Phase is the position of a Signal in its lifecycle.
type Phase int

const (
	// PhasePending: not fetched yet, nothing scheduled.
	PhasePending Phase = iota
	// PhaseFetchedWaiting: fetched, the ready event is scheduled.
	PhaseFetchedWaiting
	// PhaseSignaled: the ready event has been emitted.
	PhaseSignaled
	// PhaseStopped: torn down, no event will be emitted anymore.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "Pending"
	case PhaseFetchedWaiting:
		return "FetchedWaiting"
	case PhaseSignaled:
		return "Signaled"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (p Phase) Terminal() bool {
	return p == PhaseSignaled || p == PhaseStopped
}
