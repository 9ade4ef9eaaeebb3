package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates the intent file at path.
//
// A missing file yields a *NotFoundError; a structurally invalid document
// yields a *ValidationError listing every problem. Load never touches the
// hardware tree.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading intent configuration: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing intent configuration %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the structural invariants of an intent document and
// returns a *ValidationError aggregating every violation, or nil.
//
// Required per device: positive pwm, temp and fan channel numbers, and a
// limits block whose st, temp and pwm pairs each carry at least two ordered
// values. Validation is a pure function of the document.
func Validate(cfg *Config) error {
	var issues []string

	if len(cfg.Devices) == 0 {
		issues = append(issues, "no devices declared")
	}

	names := make([]string, 0, len(cfg.Devices))
	for name := range cfg.Devices {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dev := cfg.Devices[name]
		if dev == nil {
			issues = append(issues, fmt.Sprintf("device %q: empty declaration", name))
			continue
		}

		for _, ch := range []struct {
			key string
			n   int
		}{
			{"pwm", dev.PWM},
			{"temp", dev.Temp},
			{"fan", dev.Fan},
		} {
			if ch.n <= 0 {
				issues = append(issues, fmt.Sprintf("device %q: missing or non-positive %q channel", name, ch.key))
			}
		}

		if dev.Limits == nil {
			issues = append(issues, fmt.Sprintf("device %q: missing \"limits\" block", name))
			continue
		}
		for _, lim := range []struct {
			key  string
			pair []int
		}{
			{"st", dev.Limits.StartStop},
			{"temp", dev.Limits.Temp},
			{"pwm", dev.Limits.PWM},
		} {
			if len(lim.pair) < 2 {
				issues = append(issues, fmt.Sprintf("device %q: limits.%s needs [min, max], got %d value(s)", name, lim.key, len(lim.pair)))
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
