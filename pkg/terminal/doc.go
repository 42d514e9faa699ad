// Package terminal provides the cursor and erase primitives a board needs to
// redraw itself in place.
//
// A Driver is an io.Writer that also knows how to move the cursor and erase
// screen regions. Everything written between two Flush calls is buffered, so
// one board frame (erase + rows) reaches the terminal as a single write.
//
// Use New to get the driver for the running platform. Use NewForOS when the
// platform must be chosen explicitly, for instance in tests.
package terminal
