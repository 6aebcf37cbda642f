package readiness

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/kedacore/readysignal/pkg/events"
	"github.com/kedacore/readysignal/pkg/util"
)

// ErrStopped is returned by Wait when the Signal was stopped before it
// settled.
var ErrStopped = errors.New("readiness signal stopped before settling")

// Signal owns the readiness state of one component instance and the single
// delayed ready event that follows fetch completion.
//
// Only the first NotifyFetched has an effect: later calls neither re-arm the
// timer nor emit a second event. A Signal stopped before its timer fires never
// emits.
type Signal struct {
	state   *State
	emitter events.Emitter

	clock     clock.WithDelayedExecution
	delay     time.Duration
	event     string
	lggr      logr.Logger
	collector Collector

	mu      sync.Mutex
	phase   Phase
	timer   clock.Timer
	settled chan struct{}
	stopped chan struct{}
}

// New returns a Signal in PhasePending that reports to emitter. A nil emitter
// behaves like one without subscribers.
func New(emitter events.Emitter, opts ...Option) *Signal {
	if util.IsNil(emitter) {
		emitter = events.Discard
	}
	s := &Signal{
		state:     NewState(),
		emitter:   emitter,
		clock:     clock.RealClock{},
		delay:     DefaultSettleDelay,
		event:     EventReady,
		lggr:      logr.Discard(),
		collector: nopCollector{},
		phase:     PhasePending,
		settled:   make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lggr = s.lggr.WithName("readiness")
	return s
}

// NotifyFetched marks the data as fetched and schedules the ready event.
// The flag is visible to IsReady before NotifyFetched returns, and always
// before the event is emitted.
func (s *Signal) NotifyFetched() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePending {
		s.lggr.V(1).Info("ignoring fetch notification", "phase", s.phase)
		return
	}

	s.state.markReady()
	s.phase = PhaseFetchedWaiting
	s.collector.RecordFetched()

	s.lggr.V(1).Info("fetched, scheduling event", "event", s.event, "delay", s.delay)
	s.timer = s.clock.AfterFunc(s.delay, s.fire)
}

func (s *Signal) fire() {
	s.mu.Lock()
	if s.phase != PhaseFetchedWaiting {
		// stopped while the timer was firing
		s.mu.Unlock()
		return
	}
	s.phase = PhaseSignaled
	s.timer = nil
	close(s.settled)
	s.mu.Unlock()

	s.lggr.V(1).Info("emitting event", "event", s.event)
	s.collector.RecordReadyEmitted()
	s.emitter.Emit(s.event)
}

// IsReady reports whether NotifyFetched has been called.
func (s *Signal) IsReady() bool {
	return s.state.IsReady()
}

func (s *Signal) State() *State {
	return s.state
}

func (s *Signal) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// Stop tears the Signal down. It reports whether a pending ready event was
// canceled. Calling Stop more than once is fine.
func (s *Signal) Stop() bool {
	s.mu.Lock()
	if s.phase == PhaseStopped {
		s.mu.Unlock()
		return false
	}
	canceled := s.phase == PhaseFetchedWaiting
	timer := s.timer
	s.timer = nil
	s.phase = PhaseStopped
	close(s.stopped)
	s.mu.Unlock()

	// fire re-checks the phase, so a timer that already went off is harmless
	if timer != nil {
		timer.Stop()
	}
	if canceled {
		s.collector.RecordCanceled()
		s.lggr.V(1).Info("canceled pending event", "event", s.event)
	}
	return canceled
}

// Settled returns a channel that is closed once the ready event has been
// emitted. It is never closed for a Signal stopped before settling.
func (s *Signal) Settled() <-chan struct{} {
	return s.settled
}

// Wait blocks until the ready event has been emitted. It returns ErrStopped
// if the Signal is stopped first, or the context's error if ctx is done first.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.settled:
		return nil
	default:
	}

	select {
	case <-s.settled:
		return nil
	case <-s.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
