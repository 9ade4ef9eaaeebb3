package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultSysRoot is the mount point of sysfs.
	DefaultSysRoot = "/sys"
	// DefaultClassDir is where the kernel exposes hwmon class entries.
	DefaultClassDir = "/sys/class/hwmon"
)

// Device is one hardware monitor instance discovered on the running system.
type Device struct {
	// Name is the kernel-reported driver/chip name (e.g. "nct6775").
	// Stable across reboots; the identity key for intent matching.
	Name string
	// ID is the enumeration handle assigned this boot (e.g. "hwmon3").
	// Not stable across reboots.
	ID string
	// DevPath is the physical device path relative to the sysfs root
	// (e.g. "devices/platform/nct6775.656"). Stable across reboots.
	DevPath string
}

// Scanner discovers hwmon devices. The zero value is not usable; use
// NewScanner.
type Scanner struct {
	classDir string
	sysRoot  string
	log      *zap.Logger
}

// Option overrides a Scanner default.
type Option func(*Scanner)

// WithClassDir overrides the hwmon class directory (tests).
func WithClassDir(dir string) Option {
	return func(s *Scanner) { s.classDir = dir }
}

// WithSysRoot overrides the sysfs root directory (tests).
func WithSysRoot(root string) Option {
	return func(s *Scanner) { s.sysRoot = root }
}

// NewScanner creates a Scanner for the live system unless overridden.
func NewScanner(log *zap.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		classDir: DefaultClassDir,
		sysRoot:  DefaultSysRoot,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan enumerates the class directory and returns the discovered devices
// keyed by driver name.
//
// Entries are visited in lexicographic handle order. An entry whose name
// attribute cannot be read is skipped. When two entries report the same
// driver name the later one overwrites the earlier. An empty or missing
// class directory returns an empty map.
func (s *Scanner) Scan() (map[string]Device, error) {
	s.log.Debug("scanning for hwmon devices", zap.String("class_dir", s.classDir))

	devices := make(map[string]Device)

	entries, err := os.ReadDir(s.classDir)
	if err != nil {
		if os.IsNotExist(err) {
			return devices, nil
		}
		return nil, fmt.Errorf("reading hwmon class directory: %w", err)
	}

	// os.ReadDir returns entries sorted by name, which gives the
	// deterministic hwmon0, hwmon1, ... visit order.
	for _, entry := range entries {
		entryPath := filepath.Join(s.classDir, entry.Name())

		raw, err := os.ReadFile(filepath.Join(entryPath, "name"))
		if err != nil {
			s.log.Debug("skipping entry without readable name attribute",
				zap.String("entry", entry.Name()))
			continue
		}
		driver := strings.TrimSpace(string(raw))

		devPath, err := s.devicePath(entryPath, entry.Name())
		if err != nil {
			s.log.Warn("skipping entry with unresolvable device path",
				zap.String("entry", entry.Name()),
				zap.Error(err))
			continue
		}

		if prev, ok := devices[driver]; ok {
			s.log.Warn("duplicate driver name, keeping later entry",
				zap.String("driver", driver),
				zap.String("dropped", prev.ID),
				zap.String("kept", entry.Name()))
		}

		s.log.Debug("found hwmon device",
			zap.String("driver", driver),
			zap.String("id", entry.Name()),
			zap.String("devpath", devPath))

		devices[driver] = Device{
			Name:    driver,
			ID:      entry.Name(),
			DevPath: devPath,
		}
	}

	return devices, nil
}

// devicePath canonicalizes a class entry into the physical device path.
//
// Contract: resolve the entry's symlink chain, require the target to live
// under the sysfs root, then strip the root prefix and the trailing
// "hwmon/<id>" segments. What remains is the device-tree path that stays
// put across reboots.
func (s *Scanner) devicePath(entryPath, id string) (string, error) {
	resolved, err := filepath.EvalSymlinks(entryPath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(s.sysRoot, resolved)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %s resolves outside sysfs root: %s", id, resolved)
	}

	suffix := filepath.Join("hwmon", id)
	if !strings.HasSuffix(rel, suffix) {
		return "", fmt.Errorf("entry %s resolves to unexpected path: %s", id, resolved)
	}

	return filepath.Clean(strings.TrimSuffix(rel, suffix)), nil
}
