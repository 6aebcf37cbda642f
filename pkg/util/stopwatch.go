package util

import (
	"time"

	"k8s.io/utils/clock"
)

// Stopwatch measures the time between Start and Stop on a clock, the real
// one unless set otherwise.
type Stopwatch struct {
	Clock clock.PassiveClock

	startTime time.Time
	stopTime  time.Time
}

func (sw *Stopwatch) now() time.Time {
	if sw.Clock == nil {
		return time.Now()
	}
	return sw.Clock.Now()
}

func (sw *Stopwatch) Start() {
	sw.startTime = sw.now()
}

func (sw *Stopwatch) Stop() {
	sw.stopTime = sw.now()
}

func (sw *Stopwatch) StartTime() time.Time {
	return sw.startTime
}

func (sw *Stopwatch) StopTime() time.Time {
	return sw.stopTime
}

func (sw *Stopwatch) ElapsedTime() time.Duration {
	return sw.stopTime.Sub(sw.startTime)
}
