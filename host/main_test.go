package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/clock"

	"github.com/kedacore/readysignal/host/config"
	"github.com/kedacore/readysignal/pkg/util"
)

var _ = Describe("run", func() {
	var (
		mu    sync.Mutex
		lines []string
	)

	logged := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), lines...)
	}

	BeforeEach(func() {
		lines = nil
	})

	It("loads, settles and stops cleanly", func() {
		lggr := funcr.New(func(prefix, args string) {
			mu.Lock()
			defer mu.Unlock()
			lines = append(lines, args)
		}, funcr.Options{})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		settleCfg := &config.Settle{
			Delay:         20 * time.Millisecond,
			FetchDuration: 10 * time.Millisecond,
			EventName:     "ready",
		}
		servingCfg := &config.Serving{AdminPort: 18236}
		metricsCfg := &config.Metrics{}

		errs := make(chan error, 1)
		go func() {
			errs <- run(ctx, lggr, clock.RealClock{}, settleCfg, servingCfg, metricsCfg)
		}()

		Eventually(logged, 2*time.Second).Should(ContainElement(ContainSubstring("component settled")))

		status := func(path string) func() int {
			return func() int {
				resp, err := http.Get("http://localhost:18236" + path)
				if err != nil {
					return 0
				}
				defer resp.Body.Close()
				return resp.StatusCode
			}
		}
		Eventually(status("/readyz"), 2*time.Second).Should(Equal(http.StatusOK))
		Eventually(status("/settlez"), 2*time.Second).Should(Equal(http.StatusOK))

		cancel()
		var err error
		Eventually(errs, 5*time.Second).Should(Receive(&err))
		Expect(util.IsIgnoredErr(err)).To(BeTrue())
	})
})
