// Package board renders a fixed-size text dashboard that is redrawn in place.
//
// The container hierarchy is Board → Sector → Line → Field. Every container
// has a fixed row budget decided at construction time:
//
//   - a Line is exactly one row, the concatenation of its fields
//   - a Sector reserves capacity rows (plus one for an optional title) and
//     pads itself with blank rows, so its height never changes
//   - a Board reserves capacity rows and refuses children whose combined
//     budgets would not fit
//
// Because every child always renders to its full budget, a frame written by
// Board.Draw is always exactly Board.Capacity rows tall. The next Draw erases
// exactly that region and writes it again, which is what makes in-place
// redraw flicker free and scroll free.
//
// A StreamingSector keeps the most recent lines read from a LineSource (for
// example a child process's output) in a FIFO window bounded by its capacity.
//
// Nothing in this package is safe for concurrent use. Callers driving a board
// from several goroutines must serialize every call themselves.
package board
