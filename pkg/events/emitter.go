package events

// Emitter delivers a named signal to whoever is listening. Implementations
// must not block the caller for long; the readiness signal invokes Emit from
// a timer callback.
type Emitter interface {
	Emit(name string)
}

type EmitterFunc func(name string)

var _ Emitter = (EmitterFunc)(nil)

func (f EmitterFunc) Emit(name string) {
	f(name)
}

// Discard is an Emitter without subscribers.
var Discard Emitter = EmitterFunc(func(string) {})
