package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Metrics is the configuration for configuring metrics in the host.
type Metrics struct {
	// Sets whether or not to enable the Prometheus metrics exporter
	OtelPrometheusExporterEnabled bool `envconfig:"OTEL_PROM_EXPORTER_ENABLED" default:"true"`
	// Sets whether or not to enable the OTEL metrics exporter
	OtelHTTPExporterEnabled bool `envconfig:"OTEL_EXPORTER_OTLP_METRICS_ENABLED" default:"false"`
	// Sets the HTTP endpoint where metrics should be sent to
	OtelHTTPCollectorEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4318"`
	// Sets the OTLP headers required by the otel exporter
	OtelHTTPHeaders string `envconfig:"OTEL_EXPORTER_OTLP_HEADERS" default:""`
	// Set the connection to the otel HTTP collector endpoint to use HTTP rather than HTTPS
	OtelHTTPCollectorInsecure bool `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
	// Set the interval in seconds to export otel metrics to the configured collector endpoint
	OtelMetricExportInterval int `envconfig:"OTEL_METRIC_EXPORT_INTERVAL" default:"30"`
}

func ParseMetrics() (*Metrics, error) {
	ret := new(Metrics)
	if err := envconfig.Process("", ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func MustParseMetrics() *Metrics {
	ret := new(Metrics)
	envconfig.MustProcess("", ret)
	return ret
}
