// Package hwmon enumerates the hardware monitor devices exposed by the
// kernel under /sys/class/hwmon.
//
// Each class entry is a symlink into the device tree. The scanner reads the
// entry's driver name attribute and canonicalizes the symlink to recover the
// physical device path, which is stable across reboots while the hwmonN
// handle is not. The resulting map is keyed by driver name, the identity
// fanctl uses to re-match user intent to hardware on every boot.
//
// One instance per driver name is representable: when two entries report the
// same driver, the later one (in handle order) wins. This is a hard
// constraint of the driver-name keying scheme.
//
// Scanning is read-only and tolerant: entries without a readable name
// attribute are skipped, and an empty or absent class directory yields an
// empty map, not an error.
package hwmon
