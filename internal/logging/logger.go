// Package logging builds the leveled zap logger used across fanctl.
//
// The logger is constructed once in the command layer and handed to each
// component explicitly; no package keeps a global logger. Verbosity follows
// the repeatable -v flag: 0 logs warnings only, 1 adds info, 2 or more adds
// debug output.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levels maps the -v flag count to a zap level. Counts beyond the last
// entry clamp to debug.
var levels = []zapcore.Level{
	zapcore.WarnLevel,
	zapcore.InfoLevel,
	zapcore.DebugLevel,
}

// New builds a console logger for the given verbosity count.
//
// All log output goes to stderr: stdout is reserved for the generated
// configuration when the output sentinel "-" is used.
func New(verbosity int) (*zap.Logger, error) {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		verbosity = len(levels) - 1
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(levels[verbosity]),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
