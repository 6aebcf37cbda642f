package config

import (
	"errors"
	"fmt"
)

func Validate(settle Settle, serving Serving, metrics Metrics) error {
	var errs []error
	if settle.Delay < 0 {
		errs = append(errs, fmt.Errorf("settle delay (%s) must not be negative", settle.Delay))
	}
	if settle.FetchDuration < 0 {
		errs = append(errs, fmt.Errorf("fetch duration (%s) must not be negative", settle.FetchDuration))
	}
	if settle.EventName == "" {
		errs = append(errs, errors.New("event name must not be empty"))
	}
	if serving.AdminPort <= 0 || serving.AdminPort > 65535 {
		errs = append(errs, fmt.Errorf("admin port (%d) out of range", serving.AdminPort))
	}
	if metrics.OtelHTTPExporterEnabled && metrics.OtelMetricExportInterval <= 0 {
		errs = append(errs, fmt.Errorf("otel metric export interval (%d) must be positive", metrics.OtelMetricExportInterval))
	}
	return errors.Join(errs...)
}
