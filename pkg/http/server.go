package http

import (
	"context"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// ServeContext serves hdl on addr until ctx is done. It returns
// http.ErrServerClosed after a shutdown caused by ctx.
func ServeContext(ctx context.Context, addr string, hdl http.Handler) error {
	srv := &http.Server{
		Handler:           hdl,
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		// ctx is already done here, so shut down on a fresh one
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}
