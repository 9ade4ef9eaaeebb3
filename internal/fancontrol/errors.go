package fancontrol

import "fmt"

// MismatchError reports that a declared device matched a live hwmon entry by
// driver name but one of its expected channel files is absent. It fails the
// entire run: the generated configuration must never reference a channel
// that does not exist.
type MismatchError struct {
	// Device is the driver name from the intent file.
	Device string
	// Monitor is the hwmon handle the device resolved to.
	Monitor string
	// Channel identifies the missing attribute, e.g. "fan1".
	Channel string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("hwmon file for %s->%s/%s is missing", e.Device, e.Monitor, e.Channel)
}

// IsMismatchError reports whether err is a MismatchError.
func IsMismatchError(err error) bool {
	_, ok := err.(*MismatchError)
	return ok
}
