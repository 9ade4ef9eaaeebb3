// Package fancontrol turns a validated intent configuration and a live
// hwmon scan into a fancontrol(8) configuration file.
//
// The pipeline has three stages:
//
//  1. Resolve joins each declared device with the scanned device of the same
//     driver name and verifies every referenced pwm/fan/temp channel file
//     exists on disk. Declared devices not present on this machine are
//     skipped; a present device with a missing channel file fails the whole
//     run. Nothing is ever emitted from a partially verified mapping.
//
//  2. IsStale compares the DEVNAME line of a previously written artifact
//     against the fresh resolution to decide whether the hwmon handles have
//     moved since the file was generated (enumeration order is not stable
//     across reboots).
//
//  3. Emit serializes the resolution into the exact line grammar fancontrol
//     expects, including the trailing space after the last entry of each
//     multi-value line.
package fancontrol
