package config

// DefaultPath is where fanctl looks for the intent file unless overridden.
const DefaultPath = "/etc/fanctl/config.yml"

// Config represents the entire intent configuration file.
type Config struct {
	// Devices maps a driver name (as reported by the kernel, e.g.
	// "nct6775") to its declared channel configuration.
	Devices map[string]*DeviceIntent `yaml:"devices"`
}

// DeviceIntent is one user-declared device configuration. Channel numbers
// refer to the numbered sysfs attribute files (1 for pwm1, temp1_input, ...).
type DeviceIntent struct {
	PWM    int     `yaml:"pwm"`
	Temp   int     `yaml:"temp"`
	Fan    int     `yaml:"fan"`
	Limits *Limits `yaml:"limits"`
}

// Limits holds the three ordered [min, max] pairs for a device.
type Limits struct {
	// StartStop is the PWM value at which the fan starts spinning and the
	// value below which it stops.
	StartStop []int `yaml:"st"`
	// Temp is the temperature range (degrees C) mapped onto the PWM range.
	Temp []int `yaml:"temp"`
	// PWM is the raw PWM output range (0-255).
	PWM []int `yaml:"pwm"`
}
