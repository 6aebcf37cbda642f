package http

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kedacore/readysignal/pkg/util"
)

const defaultProbeInterval = time.Second

// ProbeHandler answers 200 while all of its health checks pass and 503
// otherwise. Checks run in Start; ServeHTTP only reports the last outcome.
type ProbeHandler struct {
	name         string
	healthChecks []util.HealthChecker
	interval     time.Duration
	recheck      util.Signaler
	healthy      atomic.Bool
}

func NewProbeHandler(name string, healthChecks ...util.HealthChecker) *ProbeHandler {
	return &ProbeHandler{
		name:         name,
		healthChecks: healthChecks,
		interval:     defaultProbeInterval,
		recheck:      util.NewSignaler(),
	}
}

// Recheck asks Start to run the health checks now instead of at the next
// interval.
func (ph *ProbeHandler) Recheck() {
	if ph.recheck != nil {
		ph.recheck.Signal()
	}
}

var _ http.Handler = (*ProbeHandler)(nil)

func (ph *ProbeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := util.LoggerFromContext(r.Context()).WithName("ProbeHandler")

	sc := http.StatusOK
	if !ph.healthy.Load() {
		sc = http.StatusServiceUnavailable
	}
	w.WriteHeader(sc)

	st := http.StatusText(sc)
	if _, err := w.Write([]byte(st)); err != nil {
		logger.Error(err, "write failed", "probe", ph.name)
	}
}

// Start runs the health checks once per interval until ctx is done.
func (ph *ProbeHandler) Start(ctx context.Context) {
	interval := ph.interval
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var recheck <-chan struct{}
	if ph.recheck != nil {
		recheck = ph.recheck.C()
	}

	for {
		ph.check(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-recheck:
		}
	}
}

func (ph *ProbeHandler) check(ctx context.Context) {
	logger := util.LoggerFromContext(ctx).WithName("ProbeHandler")

	for _, hc := range ph.healthChecks {
		if err := hc.HealthCheck(ctx); err != nil {
			if ph.healthy.Swap(false) {
				logger.Info("probe failing", "probe", ph.name, "reason", err.Error())
			}
			return
		}
	}

	if !ph.healthy.Swap(true) {
		logger.Info("probe passing", "probe", ph.name)
	}
}
