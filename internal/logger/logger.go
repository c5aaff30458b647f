// Package logger builds the zerolog logger used for diagnostics.
// Diagnostics go to stderr so that stdout stays free for results.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Timestamps are omitted; the
// level is debug when verbose is set and info otherwise.
func New(w io.Writer, verbose, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		Output(zerolog.ConsoleWriter{
			Out:          w,
			NoColor:      noColor,
			PartsExclude: []string{zerolog.TimestampFieldName},
		})
}
