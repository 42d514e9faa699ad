package board

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
)

// Sector is a fixed-capacity, ordered group of lines with an optional title.
// It always renders to the same number of rows when drawEmpty is set.
type Sector struct {
	id        string
	capacity  int
	title     *Line
	lines     []*Line
	index     map[string]*Line
	drawEmpty bool
	logger    zerolog.Logger
}

type sectorOptions struct {
	title      *Line
	drawEmpty  bool
	template   *LineTemplate
	generators []fieldGenerator
	handler    func(*Line)
}

// SectorOption configures a Sector or StreamingSector. Stream options are
// ignored by plain sectors.
type SectorOption func(*sectorOptions)

// WithTitle sets a title line drawn above the lines. It adds one row to the
// sector's budget and is never evicted.
func WithTitle(title *Line) SectorOption {
	return func(o *sectorOptions) {
		o.title = title
	}
}

// WithDrawEmpty controls whether unused capacity is drawn as blank rows.
// Defaults to true, which keeps the sector's height constant.
func WithDrawEmpty(drawEmpty bool) SectorOption {
	return func(o *sectorOptions) {
		o.drawEmpty = drawEmpty
	}
}

func buildSectorOptions(opts []SectorOption) sectorOptions {
	o := sectorOptions{drawEmpty: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewSector creates a sector holding at most capacity lines, title excluded
func NewSector(id string, capacity int, opts ...SectorOption) (*Sector, error) {
	return newSector(id, capacity, buildSectorOptions(opts))
}

func newSector(id string, capacity int, o sectorOptions) (*Sector, error) {
	if id == "" {
		return nil, errors.New(errors.ErrInvalidInput, "sector id must not be empty")
	}
	if capacity < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "sector %q capacity must not be negative, got %d", id, capacity)
	}
	return &Sector{
		id:        id,
		capacity:  capacity,
		title:     o.title,
		index:     make(map[string]*Line),
		drawEmpty: o.drawEmpty,
		logger:    logging.GetLogger("board").With().Str("sector", id).Logger(),
	}, nil
}

// ID implements Object
func (s *Sector) ID() string {
	return s.id
}

// Capacity returns the maximum number of lines, title excluded
func (s *Sector) Capacity() int {
	return s.capacity
}

// Title returns the title line, nil when there is none
func (s *Sector) Title() *Line {
	return s.title
}

// DrawEmpty reports whether unused capacity is drawn as blank rows
func (s *Sector) DrawEmpty() bool {
	return s.drawEmpty
}

func (s *Sector) titleRows() int {
	if s.title != nil {
		return 1
	}
	return 0
}

// RowsUsed implements Object
func (s *Sector) RowsUsed() int {
	return len(s.lines) + s.titleRows()
}

// RowBudget implements Object
func (s *Sector) RowBudget() int {
	return s.capacity + s.titleRows()
}

// Len returns the number of lines, title excluded
func (s *Sector) Len() int {
	return len(s.lines)
}

// Add appends lines in order. Each line is checked as it is inserted, so
// when a later line fails the earlier ones stay admitted.
func (s *Sector) Add(lines ...*Line) error {
	for _, line := range lines {
		if line == nil {
			return errors.Newf(errors.ErrInvalidInput, "sector %q: line must not be nil", s.id)
		}
		if s.RowsUsed() >= s.RowBudget() {
			return errors.Newf(errors.ErrCapacityExceeded, "sector %q has reached the maximum lines count of %d", s.id, s.RowBudget()).
				WithDetail("sector", s.id).
				WithDetail("capacity", s.capacity)
		}
		if err := s.checkDuplicate(line); err != nil {
			return err
		}

		s.lines = append(s.lines, line)
		if id := line.ID(); id != "" {
			s.index[id] = line
		}
		s.logger.Trace().Str("line", line.ID()).Int("used", s.RowsUsed()).Msg("Line added")
	}
	return nil
}

func (s *Sector) checkDuplicate(line *Line) error {
	if id := line.ID(); id != "" {
		if _, exists := s.index[id]; exists {
			return errors.Newf(errors.ErrDuplicateID, "sector %q already contains a line with the ID %q", s.id, id).
				WithDetail("line", id)
		}
		return nil
	}
	if s.position(line) >= 0 {
		return errors.Newf(errors.ErrDuplicateID, "sector %q already contains this line", s.id)
	}
	return nil
}

func (s *Sector) position(line *Line) int {
	for i, candidate := range s.lines {
		if candidate == line {
			return i
		}
	}
	return -1
}

// Line looks a line up by id
func (s *Sector) Line(id string) (*Line, error) {
	line, ok := s.index[id]
	if !ok {
		return nil, s.notFound(id)
	}
	return line, nil
}

// Lines returns the lines in insertion order, title excluded
func (s *Sector) Lines() []*Line {
	out := make([]*Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Remove removes lines by id. All ids are checked first: if any is missing
// nothing is removed.
func (s *Sector) Remove(ids ...string) error {
	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			return s.notFound(id)
		}
	}
	for _, id := range ids {
		line, ok := s.index[id]
		if !ok {
			continue
		}
		s.detach(s.position(line))
	}
	return nil
}

// RemoveLine removes a line by identity, which is the only way to remove
// a line without an id
func (s *Sector) RemoveLine(line *Line) error {
	i := s.position(line)
	if i < 0 {
		return errors.Newf(errors.ErrNotFound, "sector %q does not contain this line", s.id)
	}
	s.detach(i)
	return nil
}

// Clear removes every line. The title is kept.
func (s *Sector) Clear() {
	s.lines = nil
	s.index = make(map[string]*Line)
}

func (s *Sector) detach(i int) *Line {
	line := s.lines[i]
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	if id := line.ID(); id != "" {
		delete(s.index, id)
	}
	return line
}

// evictOldest drops the first inserted line
func (s *Sector) evictOldest() *Line {
	if len(s.lines) == 0 {
		return nil
	}
	line := s.detach(0)
	s.logger.Trace().Str("line", line.ID()).Msg("Line evicted")
	return line
}

// Rows implements Object: title, lines, then blank rows up to capacity when
// drawEmpty is set
func (s *Sector) Rows() []string {
	rows := make([]string, 0, s.RowBudget())
	if s.title != nil {
		rows = append(rows, s.title.Render())
	}
	for _, line := range s.lines {
		rows = append(rows, line.Render())
	}
	if s.drawEmpty {
		for i := len(s.lines); i < s.capacity; i++ {
			rows = append(rows, "")
		}
	}
	return rows
}

// Draw implements Object
func (s *Sector) Draw(w io.Writer) error {
	return writeRows(w, s.Rows())
}

func (s *Sector) notFound(id string) error {
	return errors.Newf(errors.ErrNotFound, "sector %q has no line %q", s.id, id).
		WithDetail("line", id)
}
