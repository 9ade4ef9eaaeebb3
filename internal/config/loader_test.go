package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validIntent = `devices:
  nct6775:
    pwm: 1
    temp: 1
    fan: 1
    limits:
      st: [50, 150]
      temp: [40, 70]
      pwm: [0, 255]
`

func writeIntent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeIntent(t, validIntent))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dev, ok := cfg.Devices["nct6775"]
	if !ok {
		t.Fatal("Load() missing device nct6775")
	}
	if dev.PWM != 1 || dev.Temp != 1 || dev.Fan != 1 {
		t.Errorf("channels = pwm:%d temp:%d fan:%d, want 1/1/1", dev.PWM, dev.Temp, dev.Fan)
	}
	if got := dev.Limits.StartStop; len(got) != 2 || got[0] != 50 || got[1] != 150 {
		t.Errorf("limits.st = %v, want [50 150]", got)
	}
	if got := dev.Limits.Temp; len(got) != 2 || got[0] != 40 || got[1] != 70 {
		t.Errorf("limits.temp = %v, want [40 70]", got)
	}
	if got := dev.Limits.PWM; len(got) != 2 || got[0] != 0 || got[1] != 255 {
		t.Errorf("limits.pwm = %v, want [0 255]", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Load() error = %v, want *NotFoundError", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeIntent(t, "devices: [this is: not a map\n"))
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if IsValidationError(err) {
		t.Fatalf("Load() returned validation error for malformed yaml: %v", err)
	}
}

func TestValidateAggregatesIssues(t *testing.T) {
	tests := []struct {
		name       string
		intent     string
		wantIssues []string
	}{
		{
			name: "missing fan channel",
			intent: `devices:
  nct6775:
    pwm: 1
    temp: 1
    limits:
      st: [50, 150]
      temp: [40, 70]
      pwm: [0, 255]
`,
			wantIssues: []string{`device "nct6775": missing or non-positive "fan" channel`},
		},
		{
			name: "missing limits block",
			intent: `devices:
  nct6775:
    pwm: 1
    temp: 1
    fan: 1
`,
			wantIssues: []string{`device "nct6775": missing "limits" block`},
		},
		{
			name: "short limit pair",
			intent: `devices:
  nct6775:
    pwm: 1
    temp: 1
    fan: 1
    limits:
      st: [50]
      temp: [40, 70]
      pwm: [0, 255]
`,
			wantIssues: []string{`device "nct6775": limits.st needs [min, max], got 1 value(s)`},
		},
		{
			name: "multiple devices, every problem reported",
			intent: `devices:
  nct6775:
    temp: 1
    fan: 1
    limits:
      st: [50, 150]
      temp: [40, 70]
      pwm: []
  k10temp:
    pwm: 1
    temp: 1
    fan: 1
`,
			wantIssues: []string{
				`device "nct6775": missing or non-positive "pwm" channel`,
				`device "nct6775": limits.pwm needs [min, max], got 0 value(s)`,
				`device "k10temp": missing "limits" block`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeIntent(t, tt.intent))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Load() error = %v, want *ValidationError", err)
			}
			if len(verr.Issues) != len(tt.wantIssues) {
				t.Fatalf("got %d issues, want %d:\n%v", len(verr.Issues), len(tt.wantIssues), verr)
			}
			for _, want := range tt.wantIssues {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error missing issue %q:\n%v", want, err)
				}
			}
		})
	}
}

func TestValidateNoDevices(t *testing.T) {
	err := Validate(&Config{})
	if !IsValidationError(err) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
}
