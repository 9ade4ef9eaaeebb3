package fancontrol

import (
	"os"
	"strings"
)

const devnamePrefix = "DEVNAME="

// IsStale reports whether the artifact at path no longer matches the fresh
// resolution and must be regenerated.
//
// A missing or unreadable artifact is stale. Otherwise the first DEVNAME
// line decides: every persisted monitor=name pair must name a currently
// resolved device and agree on its hwmon handle. An artifact without a
// DEVNAME line cannot be trusted and is also stale.
func IsStale(resolved map[string]*ResolvedDevice, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return true
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, devnamePrefix) {
			continue
		}
		for _, pair := range strings.Fields(strings.TrimPrefix(line, devnamePrefix)) {
			monitor, name, ok := strings.Cut(pair, "=")
			if !ok {
				return true
			}
			dev, found := resolved[name]
			if !found || dev.Monitor != monitor {
				return true
			}
		}
		// First DEVNAME line wins.
		return false
	}

	return true
}
