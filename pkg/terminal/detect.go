package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// fder is satisfied by *os.File and anything else exposing a descriptor
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal. In-place redraw
// only makes sense there; for pipes and files rows should be printed plainly.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorSupported reports whether styled output should be emitted to w
func ColorSupported(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsTerminal(w) {
		return false
	}
	return termenv.NewOutput(w).Profile != termenv.Ascii
}
