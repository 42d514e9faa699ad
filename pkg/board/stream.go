package board

import (
	stderrors "errors"
	"io"

	"github.com/arthur-debert/textboard/pkg/errors"
)

// LineSource yields one line of text per call, without its terminator, and
// io.EOF once the stream is exhausted
type LineSource interface {
	ReadLine() (string, error)
}

// LineSourceFunc adapts a function to the LineSource interface
type LineSourceFunc func() (string, error)

// ReadLine implements LineSource
func (fn LineSourceFunc) ReadLine() (string, error) {
	return fn()
}

type fieldGenerator struct {
	id     string
	static string
	fn     func() string
}

func (g fieldGenerator) value() string {
	if g.fn != nil {
		return g.fn()
	}
	return g.static
}

// WithTemplate sets the shape of streamed lines. The template must declare
// a TextField. Defaults to PlainTextLine.
func WithTemplate(t *LineTemplate) SectorOption {
	return func(o *sectorOptions) {
		o.template = t
	}
}

// WithFieldValue sets a fixed text for a template field on every streamed line
func WithFieldValue(id, text string) SectorOption {
	return func(o *sectorOptions) {
		o.generators = append(o.generators, fieldGenerator{id: id, static: text})
	}
}

// WithFieldGenerator computes a template field for every streamed line
func WithFieldGenerator(id string, fn func() string) SectorOption {
	return func(o *sectorOptions) {
		o.generators = append(o.generators, fieldGenerator{id: id, fn: fn})
	}
}

// WithLineHandler lets the caller adjust every streamed line before it is
// inserted
func WithLineHandler(fn func(*Line)) SectorOption {
	return func(o *sectorOptions) {
		o.handler = fn
	}
}

// StreamingSector is a Sector fed one line at a time. It keeps the most
// recent Capacity lines and evicts the oldest first; the title stays.
type StreamingSector struct {
	*Sector
	template   *LineTemplate
	generators []fieldGenerator
	handler    func(*Line)
	ingested   int
}

// NewStreamingSector creates a streaming sector with room for capacity lines
func NewStreamingSector(id string, capacity int, opts ...SectorOption) (*StreamingSector, error) {
	o := buildSectorOptions(opts)
	if capacity < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "streaming sector %q needs a capacity of at least 1, got %d", id, capacity)
	}

	template := o.template
	if template == nil {
		template = PlainTextLine
	}
	if !template.Has(TextField) {
		return nil, errors.Newf(errors.ErrShapeMismatch, "streaming sector %q line template must have a %q field", id, TextField)
	}
	for _, g := range o.generators {
		if !template.Has(g.id) {
			return nil, errors.Newf(errors.ErrShapeMismatch, "streaming sector %q line template has no field %q", id, g.id).
				WithDetail("field", g.id)
		}
	}

	sector, err := newSector(id, capacity, o)
	if err != nil {
		return nil, err
	}
	return &StreamingSector{
		Sector:     sector,
		template:   template,
		generators: o.generators,
		handler:    o.handler,
	}, nil
}

// Template returns the shape of streamed lines
func (s *StreamingSector) Template() *LineTemplate {
	return s.template
}

// Ingested returns how many lines were ingested since creation, evicted
// ones included
func (s *StreamingSector) Ingested() int {
	return s.ingested
}

// Ingest turns raw into a line and appends it, evicting the oldest line
// first when the sector is full
func (s *StreamingSector) Ingest(raw string) error {
	line := s.template.New("")
	if err := line.SetText(TextField, raw); err != nil {
		return err
	}
	for _, g := range s.generators {
		if err := line.SetText(g.id, g.value()); err != nil {
			return err
		}
	}
	if s.handler != nil {
		s.handler(line)
	}

	if len(s.lines) >= s.capacity {
		s.evictOldest()
	}
	if err := s.Add(line); err != nil {
		return err
	}
	s.ingested++
	return nil
}

// Update reads one line from src and ingests it. It returns false, and
// leaves the sector untouched, once src reports the end of the stream.
func (s *StreamingSector) Update(src LineSource) (bool, error) {
	raw, err := src.ReadLine()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrSourceRead, "streaming sector %q failed to read", s.id)
	}
	if err := s.Ingest(raw); err != nil {
		return false, err
	}
	return true, nil
}
