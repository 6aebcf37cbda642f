package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	kedahttp "github.com/kedacore/readysignal/pkg/http"
	"github.com/kedacore/readysignal/pkg/util"
)

var _ = Describe("BuildAdminHandler", func() {
	var (
		hdl http.Handler
	)

	BeforeEach(func() {
		ready := kedahttp.NewProbeHandler("readyz")
		settled := kedahttp.NewProbeHandler("settlez", util.HealthCheckerFunc(func(context.Context) error {
			return errors.New("not settled")
		}))
		live := kedahttp.NewProbeHandler("livez")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		// a done context runs the checks exactly once
		ready.Start(ctx)
		settled.Start(ctx)

		hdl = BuildAdminHandler(logr.Discard(), ready, settled, live, struct{ Port int }{9090})
	})

	DescribeTable("routes",
		func(path string, code int) {
			w := httptest.NewRecorder()
			hdl.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			Expect(w.Code).To(Equal(code))
		},
		Entry("readyz", "/readyz", http.StatusOK),
		Entry("settlez", "/settlez", http.StatusServiceUnavailable),
		Entry("livez before first check", "/livez", http.StatusServiceUnavailable),
		Entry("metrics", "/metrics", http.StatusOK),
		Entry("config", "/config", http.StatusOK),
		Entry("version", "/version", http.StatusOK),
		Entry("unknown", "/nope", http.StatusNotFound),
	)

	It("serves the configs", func() {
		w := httptest.NewRecorder()
		hdl.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/config", nil))

		Expect(w.Body.String()).To(MatchJSON(`{"configs":[{"Port":9090}]}`))
	})
})
