// Package logging builds the zap logger shared by the CLI and the page.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how much the logger writes.
type Options struct {
	// File receives every entry. Empty disables file output.
	File string
	// Verbose tees entries to stderr and lowers the level to debug.
	Verbose bool
}

// New builds a development-style console logger. With neither a file nor
// verbose output requested it returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	var paths []string
	if opts.File != "" {
		paths = append(paths, opts.File)
	}
	if opts.Verbose {
		paths = append(paths, "stderr")
	}
	if len(paths) == 0 {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = paths
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	return cfg.Build()
}
