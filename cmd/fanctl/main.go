// Fanctl generates a fancontrol(8) configuration from a declarative intent
// file and the hwmon devices present on the running machine.
//
// Hwmon enumeration handles (hwmon0, hwmon1, ...) are not stable across
// reboots, so a hand-written /etc/fancontrol can silently start driving the
// wrong chip after a kernel or hardware change. Fanctl keys the user's
// configuration by driver name instead, re-maps it to the current handles on
// every invocation, verifies each referenced sensor and PWM channel actually
// exists, and rewrites /etc/fancontrol only when the mapping moved.
//
// Usage:
//
//	fanctl [flags]
//	fanctl scan
//
// Typically run once per boot by an init unit ordered before fancontrol
// itself. See 'fanctl --help' for flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vagnum08/fanctl/internal/config"
)

// Exit codes: 0 success or already up to date; 1 missing intent file or a
// failure writing the output; exitMappingFailed for any other failure while
// building the mapping (invalid intent, hardware mismatch).
const (
	exitFailure       = 1
	exitMappingFailed = 255
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		return exitFailure
	}
	var write *writeError
	if errors.As(err, &write) {
		return exitFailure
	}
	var mapping *mappingError
	if errors.As(err, &mapping) {
		return exitMappingFailed
	}
	return exitFailure
}
