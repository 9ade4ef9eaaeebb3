package fancontrol

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/vagnum08/fanctl/internal/config"
	"github.com/vagnum08/fanctl/internal/hwmon"
)

// Resolver cross-references declared devices against the live hwmon scan.
type Resolver struct {
	sysRoot string
	log     *zap.Logger
}

// Option overrides a Resolver default.
type Option func(*Resolver)

// WithSysRoot overrides the sysfs root directory (tests).
func WithSysRoot(root string) Option {
	return func(r *Resolver) { r.sysRoot = root }
}

// NewResolver creates a Resolver against the live sysfs unless overridden.
func NewResolver(log *zap.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		sysRoot: hwmon.DefaultSysRoot,
		log:     log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve joins every declared device present in live with its hwmon
// instance, verifying that the pwm, fan and temp channel files all exist
// under the instance's device path.
//
// Declared devices absent from live are skipped: the intent file may
// describe hardware this machine does not carry. A present device with any
// missing channel file aborts the whole run with a *MismatchError and no
// partial mapping is returned.
func (r *Resolver) Resolve(cfg *config.Config, live map[string]hwmon.Device) (map[string]*ResolvedDevice, error) {
	resolved := make(map[string]*ResolvedDevice)

	names := make([]string, 0, len(cfg.Devices))
	for name := range cfg.Devices {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		intent := cfg.Devices[name]

		dev, ok := live[name]
		if !ok {
			r.log.Info("declared device not present on this system, skipping",
				zap.String("device", name))
			continue
		}

		r.log.Info("device present on the system, proceeding with mapping",
			zap.String("device", name),
			zap.String("monitor", dev.ID))

		for _, ch := range []struct {
			kind string
			n    int
		}{
			{"pwm", intent.PWM},
			{"fan", intent.Fan},
			{"temp", intent.Temp},
		} {
			if !r.channelExists(dev, ch.kind, ch.n) {
				return nil, &MismatchError{
					Device:  name,
					Monitor: dev.ID,
					Channel: fmt.Sprintf("%s%d", ch.kind, ch.n),
				}
			}
		}

		resolved[name] = &ResolvedDevice{
			Name:    name,
			Intent:  *intent,
			Monitor: dev.ID,
			DevPath: dev.DevPath,
		}
	}

	return resolved, nil
}

// channelExists checks that at least one attribute file for the numbered
// channel exists under the device's current hwmon directory, e.g.
// <sysRoot>/<devpath>/hwmon/<id>/pwm1_* for kind "pwm", channel 1.
func (r *Resolver) channelExists(dev hwmon.Device, kind string, n int) bool {
	pattern := filepath.Join(r.sysRoot, dev.DevPath, "hwmon", dev.ID,
		fmt.Sprintf("%s%d_*", kind, n))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return false
	}
	return len(matches) > 0
}
