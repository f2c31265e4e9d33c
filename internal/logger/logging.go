// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a new default charm log on stderr.
func New(prefix string) *log.Logger {
	return NewWithConfig(prefix, log.GetLevel(), false, false, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return newLogger(os.Stderr, prefix, level, caller, showTimestamp, fmt)
}

func newLogger(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Setup replaces the package level logger used across rscheck.
// Stdout is left to the report, so everything goes to w.
// Debug mode lowers the level to debug and adds timestamps; otherwise only warnings and errors show.
func Setup(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	logger := newLogger(w, "", level, false, debug, log.TextFormatter)
	log.SetDefault(logger)
	return logger
}
