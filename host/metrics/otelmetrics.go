package metrics

import (
	"context"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/kedacore/readysignal/host/config"
	"github.com/kedacore/readysignal/pkg/build"
	"github.com/kedacore/readysignal/pkg/readiness"
)

type OtelMetrics struct {
	meter           api.Meter
	fetchedCounter  api.Int64Counter
	emittedCounter  api.Int64Counter
	canceledCounter api.Int64Counter
}

var _ readiness.Collector = (*OtelMetrics)(nil)

// NewOtelMetrics pushes to the OTLP/HTTP collector in metricsConfig unless
// options are given, in which case they replace the exporter setup.
func NewOtelMetrics(metricsConfig *config.Metrics, options ...metric.Option) *OtelMetrics {
	if options == nil {
		ctx := context.Background()
		opts := []otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(metricsConfig.OtelHTTPCollectorEndpoint),
			otlpmetrichttp.WithHeaders(getHeaders(metricsConfig.OtelHTTPHeaders)),
		}
		if metricsConfig.OtelHTTPCollectorInsecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}

		exporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			log.Fatalf("could not create otelmetrichttp exporter: %v", err)
		}

		res := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("readysignal-host"),
			semconv.ServiceVersionKey.String(build.Version()),
		)

		interval := time.Duration(metricsConfig.OtelMetricExportInterval) * time.Second
		options = []metric.Option{
			metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(interval))),
			metric.WithResource(res),
		}
	}

	provider := metric.NewMeterProvider(options...)
	meter := provider.Meter(meterName)

	fetched, emitted, canceled, err := newCounters(meter)
	if err != nil {
		log.Fatalf("could not create new otelhttpmetric counters: %v", err)
	}

	return &OtelMetrics{
		meter:           meter,
		fetchedCounter:  fetched,
		emittedCounter:  emitted,
		canceledCounter: canceled,
	}
}

func (om *OtelMetrics) RecordFetched() {
	om.fetchedCounter.Add(context.Background(), 1)
}

func (om *OtelMetrics) RecordReadyEmitted() {
	om.emittedCounter.Add(context.Background(), 1)
}

func (om *OtelMetrics) RecordCanceled() {
	om.canceledCounter.Add(context.Background(), 1)
}

// getHeaders parses "k1=v1,k2=v2" as found in OTEL_EXPORTER_OTLP_HEADERS.
// Entries without a '=' are skipped.
func getHeaders(s string) map[string]string {
	m := map[string]string{}
	if s == "" {
		return m
	}

	for _, kv := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
