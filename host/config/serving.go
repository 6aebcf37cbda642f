package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Serving is configuration for how the host serves its admin endpoints.
type Serving struct {
	// The port on which the admin server (probes, metrics, config, version)
	// listens
	AdminPort int `envconfig:"READYSIGNAL_ADMIN_PORT" default:"9090"`
}

func ParseServing() (*Serving, error) {
	ret := new(Serving)
	if err := envconfig.Process("", ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func MustParseServing() *Serving {
	ret := new(Serving)
	envconfig.MustProcess("", ret)
	return ret
}
