package util

import (
	"context"

	"github.com/go-logr/logr"
)

type contextKey int

const (
	ckLogger contextKey = iota
)

func ContextWithLogger(ctx context.Context, logger logr.Logger) context.Context {
	return context.WithValue(ctx, ckLogger, logger)
}

// LoggerFromContext returns the logger stored in ctx, or a discarding logger
// if there is none.
func LoggerFromContext(ctx context.Context) logr.Logger {
	cv, ok := ctx.Value(ckLogger).(logr.Logger)
	if !ok {
		return logr.Discard()
	}
	return cv
}
