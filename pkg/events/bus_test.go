package events

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bus", func() {
	const (
		ready = "ready"
	)

	var (
		b *Bus
	)

	BeforeEach(func() {
		b = NewBus()
	})

	Context("Emit", func() {
		It("is a no-op without subscribers", func() {
			Expect(func() { b.Emit(ready) }).NotTo(Panic())
			Expect(b.Subscribers(ready)).To(BeZero())
		})

		It("calls subscribers in order", func() {
			var got []int
			b.Subscribe(ready, func(string) { got = append(got, 1) })
			b.Subscribe(ready, func(string) { got = append(got, 2) })

			b.Emit(ready)

			Expect(got).To(Equal([]int{1, 2}))
		})

		It("only calls subscribers of the emitted name", func() {
			var n int
			b.Subscribe("other", func(string) { n++ })

			b.Emit(ready)

			Expect(n).To(BeZero())
		})

		It("passes the event name", func() {
			var name string
			b.Subscribe(ready, func(n string) { name = n })

			b.Emit(ready)

			Expect(name).To(Equal(ready))
		})

		It("allows a handler to unsubscribe itself", func() {
			var n int
			var unsub func()
			unsub = b.Subscribe(ready, func(string) {
				n++
				unsub()
			})

			b.Emit(ready)
			b.Emit(ready)

			Expect(n).To(Equal(1))
		})
	})

	Context("Subscribe", func() {
		It("returns an idempotent unsubscribe func", func() {
			var n int
			unsub := b.Subscribe(ready, func(string) { n++ })
			other := b.Subscribe(ready, func(string) {})
			Expect(b.Subscribers(ready)).To(Equal(2))

			unsub()
			unsub()
			Expect(b.Subscribers(ready)).To(Equal(1))

			b.Emit(ready)
			Expect(n).To(BeZero())

			other()
			Expect(b.Subscribers(ready)).To(BeZero())
		})

		It("is safe for concurrent use", func() {
			const (
				n = 50
			)

			var mu sync.Mutex
			var calls int

			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					b.Subscribe(ready, func(string) {
						mu.Lock()
						defer mu.Unlock()
						calls++
					})
					b.Emit("other")
				}()
			}
			wg.Wait()

			b.Emit(ready)
			Expect(calls).To(Equal(n))
		})
	})
})
