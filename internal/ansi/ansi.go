// Package ansi converts abstract color and style requests into ANSI SGR
// escape sequences and composes them onto strings. Colors may be given as
// one of the nine named terminal colors, a 6-digit hex string, or an RGB
// triplet; the latter two are quantized onto the 256-color terminal cube.
//
// The package holds no per-call state. The only shared state is the global
// styling flag, set once at startup from terminal detection and readable
// concurrently from any goroutine.
package ansi

import "sync/atomic"

const (
	escPrefix = "\x1b["
	escSuffix = "m"

	// Reset is the SGR sequence that clears all active parameters.
	Reset = "\x1b[0m"
)

var enabled atomic.Bool

// SetEnabled toggles styling globally. The embedding application sets this
// once at startup based on terminal capability; it may override it at any
// time. When styling is off, Apply is the identity function.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether styling is currently on.
func Enabled() bool {
	return enabled.Load()
}
