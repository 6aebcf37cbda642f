package events

import (
	"sync/atomic"
)

// Sink is an Emitter backed by a buffered channel. Emit never blocks: when the
// buffer is full the event is dropped and counted.
type Sink struct {
	ch      chan string
	dropped atomic.Uint64
}

func NewSink(size int) *Sink {
	if size < 1 {
		size = 1
	}
	return &Sink{
		ch: make(chan string, size),
	}
}

var _ Emitter = (*Sink)(nil)

func (s *Sink) Emit(name string) {
	select {
	case s.ch <- name:
	default:
		s.dropped.Add(1)
	}
}

func (s *Sink) Events() <-chan string {
	return s.ch
}

// Dropped returns how many events were discarded because the buffer was full.
func (s *Sink) Dropped() uint64 {
	return s.dropped.Load()
}
