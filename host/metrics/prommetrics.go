package metrics

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/exporters/prometheus"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/kedacore/readysignal/pkg/build"
	"github.com/kedacore/readysignal/pkg/readiness"
)

type PrometheusMetrics struct {
	meter           api.Meter
	fetchedCounter  api.Int64Counter
	emittedCounter  api.Int64Counter
	canceledCounter api.Int64Counter
}

var _ readiness.Collector = (*PrometheusMetrics)(nil)

func NewPrometheusMetrics(options ...prometheus.Option) *PrometheusMetrics {
	exporter, err := prometheus.New(options...)
	if err != nil {
		log.Fatalf("could not create Prometheus exporter: %v", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("readysignal-host"),
		semconv.ServiceVersionKey.String(build.Version()),
	)

	provider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(res),
	)
	meter := provider.Meter(meterName)

	fetched, emitted, canceled, err := newCounters(meter)
	if err != nil {
		log.Fatalf("could not create new Prometheus counters: %v", err)
	}

	return &PrometheusMetrics{
		meter:           meter,
		fetchedCounter:  fetched,
		emittedCounter:  emitted,
		canceledCounter: canceled,
	}
}

func (p *PrometheusMetrics) RecordFetched() {
	p.fetchedCounter.Add(context.Background(), 1)
}

func (p *PrometheusMetrics) RecordReadyEmitted() {
	p.emittedCounter.Add(context.Background(), 1)
}

func (p *PrometheusMetrics) RecordCanceled() {
	p.canceledCounter.Add(context.Background(), 1)
}

func newCounters(meter api.Meter) (fetched, emitted, canceled api.Int64Counter, err error) {
	fetched, err = meter.Int64Counter(fetchedCounterName, api.WithDescription("a counter of fetch completions reported to readiness signals"))
	if err != nil {
		return nil, nil, nil, err
	}
	emitted, err = meter.Int64Counter(emittedCounterName, api.WithDescription("a counter of ready events emitted after the settle delay"))
	if err != nil {
		return nil, nil, nil, err
	}
	canceled, err = meter.Int64Counter(canceledCounterName, api.WithDescription("a counter of pending ready events canceled by teardown"))
	if err != nil {
		return nil, nil, nil, err
	}
	return fetched, emitted, canceled, nil
}
