package events

import (
	"sync"
)

type Handler func(name string)

type subscription struct {
	id uint64
	h  Handler
}

// Bus is an Emitter that fans a named event out to its subscribers. Handlers
// are called synchronously, in subscription order, on the goroutine that
// calls Emit. Emitting an event nobody subscribed to is a no-op.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string][]subscription),
	}
}

var _ Emitter = (*Bus)(nil)

// Subscribe registers h for events called name. The returned func removes the
// subscription again and may be called more than once.
func (b *Bus) Subscribe(name string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscription{id: id, h: h})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.unsubscribe(name, id)
		})
	}
}

func (b *Bus) unsubscribe(name string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[name]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		// copy so that a concurrent Emit holding the old slice is unaffected
		rest := make([]subscription, 0, len(subs)-1)
		rest = append(rest, subs[:i]...)
		rest = append(rest, subs[i+1:]...)
		if len(rest) == 0 {
			delete(b.subs, name)
		} else {
			b.subs[name] = rest
		}
		return
	}
}

func (b *Bus) Emit(name string) {
	b.mu.RLock()
	subs := b.subs[name]
	b.mu.RUnlock()

	for _, s := range subs {
		s.h(name)
	}
}

// Subscribers returns the number of handlers currently subscribed to name.
func (b *Bus) Subscribers(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[name])
}
