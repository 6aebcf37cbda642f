package readiness

// Collector receives the lifecycle events of a Signal, typically to turn them
// into metrics. Calls must not block.
type Collector interface {
	RecordFetched()
	RecordReadyEmitted()
	RecordCanceled()
}

type nopCollector struct{}

var _ Collector = nopCollector{}

func (nopCollector) RecordFetched()      {}
func (nopCollector) RecordReadyEmitted() {}
func (nopCollector) RecordCanceled()     {}
