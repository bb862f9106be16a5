// Package logging builds the zap loggers used by the mlbonds command.
// Log output goes to stderr, so that connection tables written to stdout
// can be piped.
package logging

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ParseLevel converts a level name ("debug", "info", "warn", "error", case
// insensitive) to a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return l, errors.Wrapf(err, "log level %q", level)
	}
	return l, nil
}

// New returns a logger with the given level and format. The console format is
// meant for people, json for log collectors.
func New(level, format string) (*zap.Logger, error) {
	return NewWithPaths(level, format, []string{"stderr"})
}

// NewWithPaths is like New but writes to the given zap output paths.
func NewWithPaths(level, format string, paths []string) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	var encCfg zapcore.EncoderConfig
	switch format {
	case FormatConsole, "":
		format = FormatConsole
		encCfg = zap.NewDevelopmentEncoderConfig()
	case FormatJSON:
		encCfg = zap.NewProductionEncoderConfig()
	default:
		return nil, errors.Newf("unknown log format %q", format)
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(l),
		Development:      format == FormatConsole,
		Encoding:         format,
		EncoderConfig:    encCfg,
		OutputPaths:      paths,
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return z, nil
}
