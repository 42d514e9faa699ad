package board

import (
	"io"
	"strings"

	"github.com/arthur-debert/textboard/pkg/errors"
)

// Line is one terminal row made of ordered fields
type Line struct {
	id     string
	fields []*Field
	index  map[string]*Field
}

// NewLine creates an empty line. An empty id makes the line addressable
// only by identity once it is added to a sector or board.
func NewLine(id string) *Line {
	return &Line{
		id:    id,
		index: make(map[string]*Field),
	}
}

// ID implements Object
func (l *Line) ID() string {
	return l.id
}

// RowsUsed implements Object. A line is always exactly one row.
func (l *Line) RowsUsed() int {
	return 1
}

// RowBudget implements Object
func (l *Line) RowBudget() int {
	return 1
}

// AddField appends a new field
func (l *Line) AddField(id string, opts ...FieldOption) error {
	f, err := NewField(id, opts...)
	if err != nil {
		return err
	}
	return l.Append(f)
}

// Append adds an existing field. The line takes ownership of it.
func (l *Line) Append(f *Field) error {
	if f == nil {
		return errors.New(errors.ErrInvalidInput, "field must not be nil")
	}
	if _, exists := l.index[f.ID()]; exists {
		return errors.Newf(errors.ErrDuplicateID, "line %q already contains a field with the ID %q", l.id, f.ID()).
			WithDetail("field", f.ID())
	}
	l.fields = append(l.fields, f)
	l.index[f.ID()] = f
	return nil
}

// Field looks a field up by id
func (l *Line) Field(id string) (*Field, error) {
	f, ok := l.index[id]
	if !ok {
		return nil, l.notFound(id)
	}
	return f, nil
}

// Has reports whether the line declares a field id
func (l *Line) Has(id string) bool {
	_, ok := l.index[id]
	return ok
}

// RemoveField removes a field and returns it
func (l *Line) RemoveField(id string) (*Field, error) {
	f, ok := l.index[id]
	if !ok {
		return nil, l.notFound(id)
	}
	delete(l.index, id)
	for i, candidate := range l.fields {
		if candidate == f {
			l.fields = append(l.fields[:i], l.fields[i+1:]...)
			break
		}
	}
	return f, nil
}

// SetText sets the text of the named field
func (l *Line) SetText(id, value string) error {
	f, err := l.Field(id)
	if err != nil {
		return err
	}
	f.SetText(value)
	return nil
}

// SetBytes sets the text of the named field from UTF-8 bytes
func (l *Line) SetBytes(id string, value []byte) error {
	f, err := l.Field(id)
	if err != nil {
		return err
	}
	f.SetBytes(value)
	return nil
}

// Text returns the text of the named field
func (l *Line) Text(id string) (string, error) {
	f, err := l.Field(id)
	if err != nil {
		return "", err
	}
	return f.Text(), nil
}

// Fields returns the fields in insertion order
func (l *Line) Fields() []*Field {
	out := make([]*Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// FieldIDs returns the field ids in insertion order
func (l *Line) FieldIDs() []string {
	ids := make([]string, len(l.fields))
	for i, f := range l.fields {
		ids[i] = f.ID()
	}
	return ids
}

// Render concatenates the rendered fields
func (l *Line) Render() string {
	var b strings.Builder
	for _, f := range l.fields {
		b.WriteString(f.Render())
	}
	return b.String()
}

// Rows implements Object
func (l *Line) Rows() []string {
	return []string{l.Render()}
}

// Draw implements Object
func (l *Line) Draw(w io.Writer) error {
	return writeRows(w, l.Rows())
}

// Derive returns an independent line of the same shape: same field ids,
// widths, styles and delegates, with the current text carried over.
// Mutating either line afterwards never affects the other.
func (l *Line) Derive(id string) *Line {
	out := NewLine(id)
	for _, f := range l.fields {
		cp := f.clone()
		out.fields = append(out.fields, cp)
		out.index[cp.ID()] = cp
	}
	return out
}

// Template captures the line's current shape and text as a reusable
// prototype
func (l *Line) Template() *LineTemplate {
	return &LineTemplate{proto: l.Derive("")}
}

func (l *Line) notFound(id string) error {
	return errors.Newf(errors.ErrNotFound, "line %q has no field %q", l.id, id).
		WithDetail("field", id)
}
