package board

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/textboard/pkg/errors"
)

// AutoWidth makes a field as wide as its current text
const AutoWidth = -1

// FieldDelegate is notified after a field's text changes
type FieldDelegate interface {
	OnTextChange(f *Field)
}

// FieldDelegateFunc adapts a function to the FieldDelegate interface
type FieldDelegateFunc func(f *Field)

// OnTextChange implements FieldDelegate
func (fn FieldDelegateFunc) OnTextChange(f *Field) {
	fn(f)
}

// Field is the smallest renderable unit: a piece of text, optionally of fixed
// width and optionally styled
type Field struct {
	id       string
	width    int
	text     string
	style    Formatter
	delegate FieldDelegate
}

// FieldOption configures a Field
type FieldOption func(*Field)

// Width bounds the field to n runes. Negative values mean AutoWidth.
func Width(n int) FieldOption {
	return func(f *Field) {
		if n < 0 {
			n = AutoWidth
		}
		f.width = n
	}
}

// Text sets the initial text without notifying the delegate
func Text(s string) FieldOption {
	return func(f *Field) {
		f.text = s
	}
}

// Style sets the formatter applied to the rendered text
func Style(s Formatter) FieldOption {
	return func(f *Field) {
		f.style = s
	}
}

// Delegate sets the change delegate
func Delegate(d FieldDelegate) FieldOption {
	return func(f *Field) {
		f.delegate = d
	}
}

// OnChange sets a function as the change delegate
func OnChange(fn func(*Field)) FieldOption {
	return func(f *Field) {
		if fn == nil {
			f.delegate = nil
			return
		}
		f.delegate = FieldDelegateFunc(fn)
	}
}

// NewField creates a field. The id must not be empty.
func NewField(id string, opts ...FieldOption) (*Field, error) {
	if id == "" {
		return nil, errors.New(errors.ErrInvalidInput, "field id must not be empty")
	}
	f := &Field{id: id, width: AutoWidth}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// ID returns the field identifier
func (f *Field) ID() string {
	return f.id
}

// Text returns the raw text, newlines included
func (f *Field) Text() string {
	return f.text
}

// SetText stores s and notifies the delegate before returning
func (f *Field) SetText(s string) {
	f.text = s
	if f.delegate != nil {
		f.delegate.OnTextChange(f)
	}
}

// SetBytes decodes b as UTF-8 and stores it like SetText. Invalid sequences
// are replaced rather than rejected.
func (f *Field) SetBytes(b []byte) {
	s := string(b)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	f.SetText(s)
}

// Width returns the effective width: the bound if set, the length of the
// current text otherwise
func (f *Field) Width() int {
	if f.width != AutoWidth {
		return f.width
	}
	return utf8.RuneCountInString(stripNewlines(f.text))
}

// WidthLimit returns the configured bound, or AutoWidth
func (f *Field) WidthLimit() int {
	return f.width
}

// Style returns the formatter, nil when unstyled
func (f *Field) Style() Formatter {
	return f.style
}

// SetStyle replaces the formatter
func (f *Field) SetStyle(s Formatter) {
	f.style = s
}

// Delegate returns the change delegate, nil when none is set
func (f *Field) Delegate() FieldDelegate {
	return f.delegate
}

// SetDelegate replaces the change delegate
func (f *Field) SetDelegate(d FieldDelegate) {
	f.delegate = d
}

// Render returns the row fragment for this field. Bounded fields are cut to
// their width, keeping the start of the text, and right-padded with spaces.
func (f *Field) Render() string {
	text := stripNewlines(f.text)
	if f.width != AutoWidth {
		runes := []rune(text)
		if len(runes) > f.width {
			runes = runes[:f.width]
		}
		text = string(runes) + strings.Repeat(" ", f.width-len(runes))
	}
	if f.style != nil {
		text = f.style.Format(text)
	}
	return text
}

// clone returns an independent copy. Style and delegate are behavior and
// are shared.
func (f *Field) clone() *Field {
	cp := *f
	return &cp
}

func stripNewlines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(s, "\n", "")
}
