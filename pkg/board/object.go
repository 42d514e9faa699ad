package board

import "io"

// Object is anything a Board can hold: a Line, a Sector or a StreamingSector
type Object interface {
	// ID returns the lookup key. An empty ID means the object is only
	// addressable by identity.
	ID() string

	// RowsUsed returns how many rows currently carry content.
	RowsUsed() int

	// RowBudget returns how many rows the object reserves. It must not
	// change while the object is attached to a board.
	RowBudget() int

	// Rows renders the object, one string per terminal row.
	Rows() []string

	// Draw writes Rows to w, each followed by a newline.
	Draw(w io.Writer) error
}

// The Board is the root and is not an Object.
var (
	_ Object = (*Line)(nil)
	_ Object = (*Sector)(nil)
	_ Object = (*StreamingSector)(nil)
)

// Formatter wraps rendered field text with presentation markers. The style
// package provides implementations.
type Formatter interface {
	Format(text string) string
}

func writeRows(w io.Writer, rows []string) error {
	for _, row := range rows {
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
	}
	return nil
}
