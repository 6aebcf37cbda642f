package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/kedacore/readysignal/pkg/readiness"
	"github.com/kedacore/readysignal/pkg/util"
)

// component is the view whose data loads asynchronously. It owns a readiness
// signal for its whole lifetime and tears it down in Close.
type component struct {
	lggr          logr.Logger
	clock         clock.WithDelayedExecution
	fetchDuration time.Duration
	signal        *readiness.Signal
}

func newComponent(
	lggr logr.Logger,
	clk clock.WithDelayedExecution,
	fetchDuration time.Duration,
	sig *readiness.Signal,
) *component {
	return &component{
		lggr:          lggr.WithName("component"),
		clock:         clk,
		fetchDuration: fetchDuration,
		signal:        sig,
	}
}

// Load fetches the component's data and reports completion to the readiness
// signal. It returns ctx's error if ctx is done before the fetch completes.
func (c *component) Load(ctx context.Context) error {
	sw := util.Stopwatch{Clock: c.clock}
	sw.Start()
	if err := c.fetch(ctx); err != nil {
		return fmt.Errorf("fetching data: %w", err)
	}
	sw.Stop()

	c.lggr.Info("data fetched", "elapsed", sw.ElapsedTime())
	c.signal.NotifyFetched()
	return nil
}

// fetch stands in for the real data load; it just takes fetchDuration.
func (c *component) fetch(ctx context.Context) error {
	t := c.clock.NewTimer(c.fetchDuration)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C():
		return nil
	}
}

// Close tears the component down, dropping a ready event still pending.
func (c *component) Close() {
	if c.signal.Stop() {
		c.lggr.Info("canceled pending ready event on teardown")
	}
}

func (c *component) readyCheck(context.Context) error {
	if !c.signal.IsReady() {
		return errors.New("data not fetched yet")
	}
	return nil
}

func (c *component) settledCheck(context.Context) error {
	select {
	case <-c.signal.Settled():
		return nil
	default:
		return fmt.Errorf("not settled, phase %s", c.signal.Phase())
	}
}
