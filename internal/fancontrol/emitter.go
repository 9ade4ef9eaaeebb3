package fancontrol

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Emit writes the ten-line fancontrol configuration for resolved to w.
//
// Line order is fixed: DEVPATH, DEVNAME, FCTEMPS, FCFANS, MINTEMP, MAXTEMP,
// MINSTART, MINSTOP, MINPWM, MAXPWM. Devices appear in sorted name order,
// computed once and shared by every line. Each entry is followed by a space,
// including the last one on a line; fancontrol's parser depends on that
// delimiter.
func Emit(w io.Writer, resolved map[string]*ResolvedDevice) error {
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder

	line := func(key string, entry func(*ResolvedDevice) string) {
		b.WriteString(key)
		b.WriteByte('=')
		for _, name := range names {
			b.WriteString(entry(resolved[name]))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	line("DEVPATH", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s=%s", d.Monitor, d.DevPath)
	})
	line("DEVNAME", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s=%s", d.Monitor, d.Name)
	})
	line("FCTEMPS", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%s/temp%d_input", d.Monitor, d.Intent.PWM, d.Monitor, d.Intent.Temp)
	})
	line("FCFANS", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%s/fan%d_input", d.Monitor, d.Intent.PWM, d.Monitor, d.Intent.Fan)
	})
	line("MINTEMP", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%d", d.Monitor, d.Intent.PWM, d.Intent.Limits.Temp[0])
	})
	line("MAXTEMP", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%d", d.Monitor, d.Intent.PWM, d.Intent.Limits.Temp[1])
	})
	line("MINSTART", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%d", d.Monitor, d.Intent.PWM, d.Intent.Limits.StartStop[0])
	})
	line("MINSTOP", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%d", d.Monitor, d.Intent.PWM, d.Intent.Limits.StartStop[1])
	})
	line("MINPWM", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%d", d.Monitor, d.Intent.PWM, d.Intent.Limits.PWM[0])
	})
	line("MAXPWM", func(d *ResolvedDevice) string {
		return fmt.Sprintf("%s/pwm%d=%d", d.Monitor, d.Intent.PWM, d.Intent.Limits.PWM[1])
	})

	_, err := io.WriteString(w, b.String())
	return err
}
