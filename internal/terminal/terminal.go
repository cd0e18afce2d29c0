// Package terminal derives the process-wide styling flag and output width
// from the environment. The styling engine itself never inspects the
// terminal; it only reads the boolean this package computes.
package terminal

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted on the command line and in config files.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// ValidMode reports whether mode is one of the accepted color modes.
func ValidMode(mode string) bool {
	switch mode {
	case ModeAuto, ModeAlways, ModeNever:
		return true
	}
	return false
}

// StylingEnabled decides whether styled output should be produced on out.
// "always" and "never" force the answer; "auto" requires a real terminal,
// honors NO_COLOR, and falls back to plain text on dumb terminals.
func StylingEnabled(mode string, out *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if termenv.EnvNoColor() {
		return false
	}
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Width returns the column width of out, defaulting to 80 when out is not
// a terminal.
func Width(out *os.File) int {
	if out != nil {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
