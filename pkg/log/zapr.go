package log

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapr builds a zap-backed logr.Logger. Verbosity v enables logr's V(v)
// levels and below; development switches to zap's human readable console
// config without sampling.
func NewZapr(development bool, v int) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = &zap.SamplingConfig{
		Initial:    1,
		Thereafter: 5,
	}
	if development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if v < 0 {
		v = 0
	}
	// logr's V(n) maps onto zap level -n
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))

	zapLggr, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zapLggr), nil
}
