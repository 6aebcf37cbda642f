package util

import (
	"fmt"
	"time"
)

// WithTimeout runs f and returns its error, or a timeout error if f does not
// return within d. f keeps running in the background after a timeout.
func WithTimeout(d time.Duration, f func() error) error {
	errs := make(chan error, 1)

	go func() {
		errs <- f()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case err := <-errs:
		return err
	case <-timer.C:
		return fmt.Errorf("timed out after %v", d)
	}
}
