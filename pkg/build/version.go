package build

import (
	"runtime"

	"github.com/go-logr/logr"
)

// set via -ldflags "-X github.com/kedacore/readysignal/pkg/build.version=..."
var version string

// Version returns the current git SHA of commit the binary was built from,
// or "HEAD" for builds without version information.
func Version() string {
	if version == "" {
		return "HEAD"
	}
	return version
}

// PrintComponentInfo logs the version and runtime of the named component.
func PrintComponentInfo(lggr logr.Logger, component string) {
	lggr.Info(
		"component info",
		"component", component,
		"version", Version(),
		"goVersion", runtime.Version(),
		"goOS", runtime.GOOS,
		"goArch", runtime.GOARCH,
	)
}
