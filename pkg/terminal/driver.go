package terminal

import (
	"bufio"
	"fmt"
	"io"
	"runtime"

	"github.com/muesli/termenv"
)

// Direction is a vertical cursor motion
type Direction int

const (
	// Up moves the cursor towards the first row
	Up Direction = iota
	// Down moves the cursor towards the last row
	Down
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Driver is the terminal control capability consumed by a board.
// Rows and control sequences share the same stream so they stay ordered.
type Driver interface {
	io.Writer

	// ResetScreen erases the whole screen, optionally its scrollback too,
	// and places the cursor at the origin.
	ResetScreen(eraseScrollback bool)

	// SetCursor moves the cursor to an absolute 1-indexed position.
	SetCursor(row, col int)

	// SaveCursor and RestoreCursor checkpoint the cursor position.
	SaveCursor()
	RestoreCursor()

	// ClearLine erases the row under the cursor.
	ClearLine()

	// MoveCursor moves the cursor to column 1 of the row `by` rows away.
	// It never scrolls the screen.
	MoveCursor(dir Direction, by int)

	// Flush pushes buffered output to the underlying writer.
	Flush() error
}

// DEC private save/restore, understood by terminals that ignore CSI s/u
const (
	decSaveCursor    = "\x1b7"
	decRestoreCursor = "\x1b8"
)

// ANSI drives a VT100-compatible terminal with escape sequences
type ANSI struct {
	buf    *bufio.Writer
	out    *termenv.Output
	decSCP bool
}

// New returns the driver for the running platform
func New(w io.Writer) *ANSI {
	return NewForOS(runtime.GOOS, w)
}

// NewForOS returns the driver for the given GOOS value. macOS Terminal.app
// only honours the DEC save/restore pair, so darwin uses ESC 7 / ESC 8
// instead of CSI s / CSI u.
func NewForOS(goos string, w io.Writer) *ANSI {
	buf := bufio.NewWriter(w)
	return &ANSI{
		buf:    buf,
		out:    termenv.NewOutput(buf),
		decSCP: goos == "darwin",
	}
}

// Write buffers p until the next Flush
func (a *ANSI) Write(p []byte) (int, error) {
	return a.buf.Write(p)
}

// ResetScreen implements Driver
func (a *ANSI) ResetScreen(eraseScrollback bool) {
	if eraseScrollback {
		fmt.Fprintf(a.buf, termenv.CSI+termenv.EraseDisplaySeq, 3)
	}
	a.out.ClearScreen()
}

// SetCursor implements Driver
func (a *ANSI) SetCursor(row, col int) {
	a.out.MoveCursor(row, col)
}

// SaveCursor implements Driver
func (a *ANSI) SaveCursor() {
	if a.decSCP {
		_, _ = a.buf.WriteString(decSaveCursor)
		return
	}
	a.out.SaveCursorPosition()
}

// RestoreCursor implements Driver
func (a *ANSI) RestoreCursor() {
	if a.decSCP {
		_, _ = a.buf.WriteString(decRestoreCursor)
		return
	}
	a.out.RestoreCursorPosition()
}

// ClearLine implements Driver
func (a *ANSI) ClearLine() {
	a.out.ClearLine()
}

// MoveCursor implements Driver. CNL/CPL stop at the screen edge instead of
// scrolling, which is what keeps an erase pass from shifting content.
func (a *ANSI) MoveCursor(dir Direction, by int) {
	if by <= 0 {
		return
	}
	switch dir {
	case Up:
		a.out.CursorPrevLine(by)
	case Down:
		a.out.CursorNextLine(by)
	}
}

// Flush implements Driver
func (a *ANSI) Flush() error {
	return a.buf.Flush()
}
