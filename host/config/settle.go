package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settle is the configuration of the readiness signal and of the simulated
// fetch that drives it.
type Settle struct {
	// Delay between fetch completion and the ready event
	Delay time.Duration `envconfig:"READYSIGNAL_SETTLE_DELAY" default:"500ms"`
	// How long the simulated data fetch takes
	FetchDuration time.Duration `envconfig:"READYSIGNAL_FETCH_DURATION" default:"2s"`
	// Name of the event emitted once settled
	EventName string `envconfig:"READYSIGNAL_EVENT_NAME" default:"ready"`
}

func ParseSettle() (*Settle, error) {
	ret := new(Settle)
	if err := envconfig.Process("", ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// MustParseSettle parses standard configs using envconfig and returns a
// pointer to the newly created config. It panics if parsing failed.
func MustParseSettle() *Settle {
	ret := new(Settle)
	envconfig.MustProcess("", ret)
	return ret
}
