package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/kedacore/readysignal/host/config"
	"github.com/kedacore/readysignal/host/metrics"
	"github.com/kedacore/readysignal/pkg/build"
	"github.com/kedacore/readysignal/pkg/events"
	kedahttp "github.com/kedacore/readysignal/pkg/http"
	pkglog "github.com/kedacore/readysignal/pkg/log"
	"github.com/kedacore/readysignal/pkg/readiness"
	"github.com/kedacore/readysignal/pkg/util"
)

func main() {
	loggingCfg := config.MustParseLogging()
	lggr, err := pkglog.NewZapr(loggingCfg.Development, loggingCfg.Verbosity)
	if err != nil {
		fmt.Println("Error building logger", err)
		os.Exit(1)
	}
	settleCfg := config.MustParseSettle()
	servingCfg := config.MustParseServing()
	metricsCfg := config.MustParseMetrics()
	if err := config.Validate(*settleCfg, *servingCfg, *metricsCfg); err != nil {
		lggr.Error(err, "invalid configuration")
		os.Exit(1)
	}
	lggr.Info(
		"starting host",
		"settleConfig",
		settleCfg,
		"servingConfig",
		servingCfg,
		"metricsConfig",
		metricsCfg,
	)
	build.PrintComponentInfo(lggr, "Host")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, lggr, clock.RealClock{}, settleCfg, servingCfg, metricsCfg); !util.IsIgnoredErr(err) {
		lggr.Error(err, "error with host")
		os.Exit(1)
	}
	lggr.Info("host stopped")
}

func run(
	ctx context.Context,
	lggr logr.Logger,
	clk clock.WithDelayedExecution,
	settleCfg *config.Settle,
	servingCfg *config.Serving,
	metricsCfg *config.Metrics,
) error {
	ctx = util.ContextWithLogger(ctx, lggr)

	bus := events.NewBus()
	sig := readiness.New(
		bus,
		readiness.WithClock(clk),
		readiness.WithDelay(settleCfg.Delay),
		readiness.WithEventName(settleCfg.EventName),
		readiness.WithLogger(lggr),
		readiness.WithCollector(metrics.NewMetricsCollectors(metricsCfg)),
	)
	comp := newComponent(lggr, clk, settleCfg.FetchDuration, sig)
	defer comp.Close()

	readyProbe := kedahttp.NewProbeHandler("readyz", util.HealthCheckerFunc(comp.readyCheck))
	settleProbe := kedahttp.NewProbeHandler("settlez", util.HealthCheckerFunc(comp.settledCheck))
	liveProbe := kedahttp.NewProbeHandler("livez")

	unsubscribe := bus.Subscribe(settleCfg.EventName, func(name string) {
		lggr.Info("component settled", "event", name)
		settleProbe.Recheck()
	})
	defer unsubscribe()

	errGrp, ctx := errgroup.WithContext(ctx)

	for _, ph := range []*kedahttp.ProbeHandler{readyProbe, settleProbe, liveProbe} {
		errGrp.Go(util.DeapplyError(func() { ph.Start(ctx) }, nil))
	}

	// start loading the component's data. the readiness signal takes it
	// from there.
	errGrp.Go(func() error {
		err := comp.Load(ctx)
		if !util.IsIgnoredErr(err) {
			lggr.Error(err, "loading component data failed")
		}
		readyProbe.Recheck()
		return err
	})

	errGrp.Go(func() error {
		adminHdl := BuildAdminHandler(lggr, readyProbe, settleProbe, liveProbe, settleCfg, servingCfg, metricsCfg)
		err := runAdminServer(ctx, lggr, servingCfg.AdminPort, adminHdl)
		if !util.IsIgnoredErr(err) {
			lggr.Error(err, "admin server failed")
		}
		return err
	})

	// errGrp.Wait() returns once the context is done, or as soon as the
	// admin server or the data load fail.
	return errGrp.Wait()
}
