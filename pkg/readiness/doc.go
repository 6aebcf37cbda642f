/*
Package readiness tracks whether a component's asynchronously loaded data has
been fetched, and tells an observer about it once a settling delay has passed.

A Signal exposes two views of the same fact. The readiness flag flips the
moment NotifyFetched is called, so that a host can update its own state
immediately (for example, hide a loading indicator). The "ready" event goes
out only after DefaultSettleDelay, which leaves room for a transition to
finish before dependents react.

	sig := readiness.New(bus)
	defer sig.Stop()

	go func() {
		fetch(ctx)
		sig.NotifyFetched()
	}()

Stopping a Signal before the delay has elapsed cancels the pending event.
*/
package readiness
