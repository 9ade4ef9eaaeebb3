package fancontrol

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fancontrol")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsStaleMissingArtifact(t *testing.T) {
	resolved := resolvedFixture()
	if !IsStale(resolved, filepath.Join(t.TempDir(), "fancontrol")) {
		t.Error("IsStale() = false for missing artifact, want true")
	}
}

func TestIsStaleMatchingArtifact(t *testing.T) {
	path := writeArtifact(t, "DEVPATH=hwmon2=devices/platform/nct6775.656 \nDEVNAME=hwmon2=nct6775 \n")
	if IsStale(resolvedFixture(), path) {
		t.Error("IsStale() = true for matching artifact, want false")
	}
}

func TestIsStaleReassignedMonitor(t *testing.T) {
	// The artifact was generated when nct6775 sat on hwmon2; after a reboot
	// reordering, the fresh resolution has it on hwmon3.
	path := writeArtifact(t, "DEVNAME=hwmon2=nct6775 \n")

	resolved := resolvedFixture()
	resolved["nct6775"].Monitor = "hwmon3"

	if !IsStale(resolved, path) {
		t.Error("IsStale() = false after monitor reassignment, want true")
	}
}

func TestIsStaleUnknownPersistedDevice(t *testing.T) {
	path := writeArtifact(t, "DEVNAME=hwmon2=nct6775 hwmon1=k10temp \n")
	if !IsStale(resolvedFixture(), path) {
		t.Error("IsStale() = false with a persisted device missing from the resolution, want true")
	}
}

func TestIsStaleNoDevnameLine(t *testing.T) {
	path := writeArtifact(t, "DEVPATH=hwmon2=devices/platform/nct6775.656 \n")
	if !IsStale(resolvedFixture(), path) {
		t.Error("IsStale() = false for artifact without DEVNAME line, want true")
	}
}

func TestIsStaleFirstDevnameLineWins(t *testing.T) {
	// Only the first DEVNAME line is consulted; a later contradicting line
	// is ignored.
	path := writeArtifact(t, "DEVNAME=hwmon2=nct6775 \nDEVNAME=hwmon9=nct6775 \n")
	if IsStale(resolvedFixture(), path) {
		t.Error("IsStale() = true, want false (first DEVNAME line matches)")
	}
}

// TestEmitThenIsStale covers the idempotence round trip: an artifact just
// emitted from a resolution is never stale against that same resolution.
func TestEmitThenIsStale(t *testing.T) {
	resolved := resolvedFixture()

	var buf bytes.Buffer
	if err := Emit(&buf, resolved); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	path := writeArtifact(t, buf.String())

	if IsStale(resolved, path) {
		t.Error("IsStale() = true immediately after Emit(), want false")
	}
}
