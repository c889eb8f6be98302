// Package logging builds the process logger.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger at the given level. Unknown levels fall
// back to info.
func New(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
		Prefix:          prefix,
	})
}

// Discard is a logger for tests and tools that must stay quiet.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
