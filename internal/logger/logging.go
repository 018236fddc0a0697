// Package logger centralizes charmbracelet/log setup for the engine
// front-ends. Loggers write to stderr: in server mode stdout carries the
// msgpack frame stream and must stay clean.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a prefixed charm logger that respects the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetDebug switches the global logger between the quiet default and
// debug with timestamps.
func SetDebug(enabled bool) {
	if enabled {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
}
