package metrics

import (
	"github.com/kedacore/readysignal/host/config"
	"github.com/kedacore/readysignal/pkg/readiness"
)

const meterName = "readysignal"

const (
	fetchedCounterName  = "readysignal_fetched_count"
	emittedCounterName  = "readysignal_ready_emitted_count"
	canceledCounterName = "readysignal_canceled_count"
)

// Collectors fans readiness events out to every configured collector.
type Collectors []readiness.Collector

var _ readiness.Collector = Collectors(nil)

// NewMetricsCollectors returns the collectors enabled in metricsConfig.
func NewMetricsCollectors(metricsConfig *config.Metrics) Collectors {
	var collectors Collectors
	if metricsConfig.OtelPrometheusExporterEnabled {
		collectors = append(collectors, NewPrometheusMetrics())
	}

	if metricsConfig.OtelHTTPExporterEnabled {
		collectors = append(collectors, NewOtelMetrics(metricsConfig))
	}
	return collectors
}

func (cs Collectors) RecordFetched() {
	for _, c := range cs {
		c.RecordFetched()
	}
}

func (cs Collectors) RecordReadyEmitted() {
	for _, c := range cs {
		c.RecordReadyEmitted()
	}
}

func (cs Collectors) RecordCanceled() {
	for _, c := range cs {
		c.RecordCanceled()
	}
}
