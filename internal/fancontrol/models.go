package fancontrol

import "github.com/vagnum08/fanctl/internal/config"

// DefaultArtifactPath is where fancontrol(8) reads its configuration.
const DefaultArtifactPath = "/etc/fancontrol"

// ResolvedDevice is the join of a declared device with the live hwmon
// instance it matched, after every referenced channel file was confirmed to
// exist. Instances live for a single run only.
type ResolvedDevice struct {
	// Name is the driver name the intent and the scan agreed on.
	Name string
	// Intent is the user's declared channel and limit configuration.
	Intent config.DeviceIntent
	// Monitor is the hwmon handle assigned this boot (e.g. "hwmon2").
	Monitor string
	// DevPath is the physical device path relative to the sysfs root.
	DevPath string
}
