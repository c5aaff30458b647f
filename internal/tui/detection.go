// Package tui detects what the attached terminal supports.
package tui

import (
	"os"

	"golang.org/x/term"
)

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// ColorDisabled reports whether styled output should be suppressed: when
// forced by the caller, when NO_COLOR is set, or when stdout is not a
// terminal (redirected to a file, a pipe or a CI log).
func ColorDisabled(forced bool) bool {
	if forced {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !IsTTY()
}
