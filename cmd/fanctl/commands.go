package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vagnum08/fanctl/internal/config"
	"github.com/vagnum08/fanctl/internal/fancontrol"
	"github.com/vagnum08/fanctl/internal/hwmon"
	"github.com/vagnum08/fanctl/internal/logging"
	"github.com/vagnum08/fanctl/internal/version"
)

// stdoutSentinel routes the generated configuration to stdout when given as
// the output path.
const stdoutSentinel = "-"

var (
	configPath string
	outputPath string
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "fanctl",
	Short: "Fancontrol configuration generator",
	Long: `Generates a configuration for fancontrol based on a fanctl intent file
and automatic mapping to the hardware currently present.

The intent file declares devices by driver name; fanctl resolves each one to
its current hwmon handle, verifies the referenced channel files exist, and
rewrites the fancontrol configuration when the mapping changed.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath,
		"Intent configuration file to load")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "f", "",
		"Write to file instead of "+fancontrol.DefaultArtifactPath+" ('-' writes to stdout)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (repeatable)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

// mappingError marks a failure while building the intent-to-hardware
// mapping; main translates it to the distinct exit code.
type mappingError struct {
	err error
}

func (e *mappingError) Error() string { return e.err.Error() }
func (e *mappingError) Unwrap() error { return e.err }

// writeError marks a failure writing the output artifact.
type writeError struct {
	path string
	err  error
}

func (e *writeError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.path, e.err)
}
func (e *writeError) Unwrap() error { return e.err }

// generateCmd is also the root command's default behavior.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the fancontrol configuration",
	Long: `Map the intent configuration onto the current hardware and write the
fancontrol configuration.

When the existing configuration already matches the current hwmon handles and
no output override is given, nothing is written and fanctl exits 0.`,
	Example: `  # Regenerate /etc/fancontrol if the hwmon mapping moved
  fanctl

  # Preview the generated configuration without touching /etc/fancontrol
  fanctl -f -

  # Use a custom intent file, with debug logging
  fanctl -c ./fanctl.yml -f ./fancontrol -vv`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbosity)
	if err != nil {
		return err
	}
	defer logger.Sync()

	resolved, err := buildMapping(logger)
	if err != nil {
		var notFound *config.NotFoundError
		if errors.As(err, &notFound) {
			logger.Error("failed to read fanctl config file", zap.String("path", notFound.Path))
			return err
		}
		logger.Error("failed to generate hardware mapping", zap.Error(err))
		return &mappingError{err: err}
	}

	// With no output override, skip regeneration when the existing
	// artifact still matches the current hwmon handles.
	if outputPath == "" && !fancontrol.IsStale(resolved, fancontrol.DefaultArtifactPath) {
		logger.Info("configuration is valid, skipping regeneration")
		return nil
	}

	target := outputPath
	if target == "" {
		target = fancontrol.DefaultArtifactPath
	}

	logger.Info("generating fancontrol config")

	if target == stdoutSentinel {
		return fancontrol.Emit(cmd.OutOrStdout(), resolved)
	}

	f, err := os.Create(target)
	if err != nil {
		if os.IsPermission(err) {
			fmt.Fprintf(os.Stderr, "You don't have permissions to change %s\n", target)
		}
		return &writeError{path: target, err: err}
	}
	if err := fancontrol.Emit(f, resolved); err != nil {
		f.Close()
		return &writeError{path: target, err: err}
	}
	if err := f.Close(); err != nil {
		return &writeError{path: target, err: err}
	}

	logger.Info("config was written", zap.String("path", target))
	return nil
}

// buildMapping runs the scan-and-resolve half of the pipeline.
func buildMapping(logger *zap.Logger) (map[string]*fancontrol.ResolvedDevice, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	live, err := hwmon.NewScanner(logger).Scan()
	if err != nil {
		return nil, err
	}

	return fancontrol.NewResolver(logger).Resolve(cfg, live)
}

// scanCmd lists the hwmon devices found on this machine, as an aid for
// authoring the intent file.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List hwmon devices present on this system",
	Example: `  fanctl scan

  DRIVER    HWMON    DEVPATH
  k10temp   hwmon1   devices/pci0000:00/0000:00:18.3
  nct6775   hwmon2   devices/platform/nct6775.656`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbosity)
	if err != nil {
		return err
	}
	defer logger.Sync()

	devices, err := hwmon.NewScanner(logger).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No hwmon devices found.")
		return nil
	}

	names := make([]string, 0, len(devices))
	width := len("DRIVER")
	for name := range devices {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	fmt.Printf("%-*s  %-8s %s\n", width, "DRIVER", "HWMON", "DEVPATH")
	for _, name := range names {
		dev := devices[name]
		fmt.Printf("%-*s  %-8s %s\n", width, dev.Name, dev.ID, dev.DevPath)
	}

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fanctl %s\n", version.Full())
	},
}
