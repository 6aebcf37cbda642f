package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	kedahttp "github.com/kedacore/readysignal/pkg/http"
)

// BuildAdminHandler creates the handler for the admin endpoint.
func BuildAdminHandler(
	lggr logr.Logger,
	readyProbe http.Handler,
	settleProbe http.Handler,
	liveProbe http.Handler,
	configs ...interface{},
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/readyz", readyProbe)
	mux.Handle("/settlez", settleProbe)
	mux.Handle("/livez", liveProbe)
	mux.Handle("/metrics", promhttp.Handler())

	kedahttp.AddConfigEndpoint(lggr, mux, configs...)
	kedahttp.AddVersionEndpoint(lggr.WithName("hostAdmin"), mux)

	return mux
}

func runAdminServer(
	ctx context.Context,
	lggr logr.Logger,
	port int,
	hdl http.Handler,
) error {
	lggr = lggr.WithName("runAdminServer")

	addr := fmt.Sprintf("0.0.0.0:%d", port)
	lggr.Info("admin server starting", "address", addr)
	return kedahttp.ServeContext(ctx, addr, hdl)
}
