package readiness

import (
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
)

const (
	// DefaultSettleDelay is the time between NotifyFetched and the ready
	// event.
	DefaultSettleDelay = 500 * time.Millisecond

	// EventReady is the name of the event emitted once settled.
	EventReady = "ready"
)

// Option configures a Signal created by New.
type Option func(*Signal)

// WithDelay sets the settle delay. Negative durations are taken as zero.
func WithDelay(d time.Duration) Option {
	return func(s *Signal) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithClock sets the clock used to schedule the ready event. Tests pass a
// fake clock here to step through the settle delay.
func WithClock(c clock.WithDelayedExecution) Option {
	return func(s *Signal) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithLogger(lggr logr.Logger) Option {
	return func(s *Signal) {
		s.lggr = lggr
	}
}

func WithCollector(c Collector) Option {
	return func(s *Signal) {
		if c != nil {
			s.collector = c
		}
	}
}

// WithEventName overrides EventReady as the name passed to the emitter.
func WithEventName(name string) Option {
	return func(s *Signal) {
		if name != "" {
			s.event = name
		}
	}
}
