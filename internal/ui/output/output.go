// Package output builds termenv outputs that honour NO_COLOR and drop colour
// when the destination is not a terminal.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// ColorProfile picks the profile for w. Ascii is used when NO_COLOR is set
// or w is not a terminal.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if IsTerminal(w) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // descriptors fit in int
}

// New wraps w (stderr when nil) in a termenv.Output using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, append(opts, termenv.WithProfile(ColorProfile(w)), termenv.WithTTY(true))...)
}
