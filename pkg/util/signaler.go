package util

import (
	"context"
)

// Signaler coalesces notifications: any number of Signal calls before a Wait
// wake up a single Wait.
type Signaler interface {
	Signal()
	Wait(ctx context.Context) error
	C() <-chan struct{}
}

type signaler chan struct{}

func NewSignaler() Signaler {
	return make(signaler, 1)
}

var _ Signaler = (*signaler)(nil)

func (s signaler) Signal() {
	select {
	case s <- struct{}{}:
	default:
	}
}

func (s signaler) Wait(ctx context.Context) error {
	select {
	case <-s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// C exposes the underlying channel for use in a select.
func (s signaler) C() <-chan struct{} {
	return s
}
