package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Logging struct {
	// Human readable console output instead of JSON
	Development bool `envconfig:"READYSIGNAL_LOG_DEVELOPMENT" default:"false"`
	// logr verbosity; 1 shows the readiness lifecycle
	Verbosity int `envconfig:"READYSIGNAL_LOG_LEVEL" default:"0"`
}

func MustParseLogging() *Logging {
	ret := new(Logging)
	envconfig.MustProcess("", ret)
	return ret
}
