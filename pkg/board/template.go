package board

import (
	"sort"

	"github.com/arthur-debert/textboard/pkg/errors"
)

// TextField is the field every streamed line carries its raw text in
const TextField = "text"

// LineTemplate is a line shape with default texts, instantiated repeatedly.
// Instances never share mutable state with the template or each other.
type LineTemplate struct {
	proto *Line
}

// PlainTextLine is the simplest template: a single auto-width text field
var PlainTextLine = mustTemplate(NewField(TextField))

// NewLineTemplate builds a template from field prototypes, in order
func NewLineTemplate(fields ...*Field) (*LineTemplate, error) {
	proto := NewLine("")
	for _, f := range fields {
		if f == nil {
			return nil, errors.New(errors.ErrInvalidInput, "template field must not be nil")
		}
		if err := proto.Append(f.clone()); err != nil {
			return nil, err
		}
	}
	return &LineTemplate{proto: proto}, nil
}

func mustTemplate(f *Field, err error) *LineTemplate {
	if err != nil {
		panic(err)
	}
	t, err := NewLineTemplate(f)
	if err != nil {
		panic(err)
	}
	return t
}

// New instantiates a line carrying the template's defaults
func (t *LineTemplate) New(id string) *Line {
	return t.proto.Derive(id)
}

// NewWith instantiates a line and overrides the given field texts. Naming a
// field the template does not declare is a shape mismatch.
func (t *LineTemplate) NewWith(id string, values map[string]string) (*Line, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !t.proto.Has(k) {
			return nil, errors.Newf(errors.ErrShapeMismatch, "field %q does not exist in line", k).
				WithDetail("field", k)
		}
	}

	line := t.New(id)
	for _, k := range keys {
		f, _ := line.Field(k)
		f.SetText(values[k])
	}
	return line, nil
}

// Has reports whether the template declares a field id
func (t *LineTemplate) Has(id string) bool {
	return t.proto.Has(id)
}

// FieldIDs returns the declared field ids in order
func (t *LineTemplate) FieldIDs() []string {
	return t.proto.FieldIDs()
}
