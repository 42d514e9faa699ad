package board

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
	"github.com/arthur-debert/textboard/pkg/terminal"
)

// Board is the root container. It reserves a fixed number of terminal rows
// and owns the redraw protocol.
type Board struct {
	id       string
	capacity int
	objects  []Object
	index    map[string]Object
	driver   terminal.Driver
	logger   zerolog.Logger
	frames   int
}

// Option configures a Board
type Option func(*Board)

// WithID names the board
func WithID(id string) Option {
	return func(b *Board) {
		b.id = id
	}
}

// WithOutput draws the board to w using the platform's terminal driver
func WithOutput(w io.Writer) Option {
	return func(b *Board) {
		b.driver = terminal.New(w)
	}
}

// WithDriver draws the board through d
func WithDriver(d terminal.Driver) Option {
	return func(b *Board) {
		b.driver = d
	}
}

// New creates a board reserving capacity rows. It draws to stdout unless
// WithOutput or WithDriver says otherwise.
func New(capacity int, opts ...Option) (*Board, error) {
	if capacity < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "board capacity must not be negative, got %d", capacity)
	}
	b := &Board{
		capacity: capacity,
		index:    make(map[string]Object),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.driver == nil {
		b.driver = terminal.New(os.Stdout)
	}
	b.logger = logging.GetLogger("board").With().Str("board", b.id).Int("capacity", capacity).Logger()
	return b, nil
}

// ID returns the board name, empty when unnamed
func (b *Board) ID() string {
	return b.id
}

// Capacity returns the number of rows the board reserves
func (b *Board) Capacity() int {
	return b.capacity
}

// RowsUsed returns the sum of the children's row budgets
func (b *Board) RowsUsed() int {
	used := 0
	for _, obj := range b.objects {
		used += obj.RowBudget()
	}
	return used
}

// Free returns the rows still available to new children
func (b *Board) Free() int {
	return b.capacity - b.RowsUsed()
}

// Frames returns how many frames were drawn
func (b *Board) Frames() int {
	return b.frames
}

// Add appends children in order. A child's budget is fixed at admission;
// each child is checked as it is inserted, so earlier children of a failing
// call stay admitted.
func (b *Board) Add(objs ...Object) error {
	for _, obj := range objs {
		if obj == nil {
			return errors.New(errors.ErrInvalidInput, "board object must not be nil")
		}
		if b.RowsUsed()+obj.RowBudget() > b.capacity {
			return errors.Newf(errors.ErrCapacityExceeded,
				"failed to add board object %q: the board has reached the maximum lines count of %d", obj.ID(), b.capacity).
				WithDetails(map[string]interface{}{
					"object": obj.ID(),
					"budget": obj.RowBudget(),
					"free":   b.Free(),
				})
		}
		if err := b.checkDuplicate(obj); err != nil {
			return err
		}

		b.objects = append(b.objects, obj)
		if id := obj.ID(); id != "" {
			b.index[id] = obj
		}
		b.logger.Debug().Str("object", obj.ID()).Int("budget", obj.RowBudget()).Int("free", b.Free()).Msg("Object added")
	}
	return nil
}

func (b *Board) checkDuplicate(obj Object) error {
	if id := obj.ID(); id != "" {
		if _, exists := b.index[id]; exists {
			return errors.Newf(errors.ErrDuplicateID, "board already contains an object with the ID %q", id).
				WithDetail("object", id)
		}
		return nil
	}
	if b.position(obj) >= 0 {
		return errors.New(errors.ErrDuplicateID, "board already contains this object")
	}
	return nil
}

func (b *Board) position(obj Object) int {
	for i, candidate := range b.objects {
		if candidate == obj {
			return i
		}
	}
	return -1
}

// Get looks a child up by id
func (b *Board) Get(id string) (Object, error) {
	obj, ok := b.index[id]
	if !ok {
		return nil, b.notFound(id)
	}
	return obj, nil
}

// Sector looks a child sector up by id. Streaming sectors are returned as
// their underlying Sector.
func (b *Board) Sector(id string) (*Sector, error) {
	obj, err := b.Get(id)
	if err != nil {
		return nil, err
	}
	switch v := obj.(type) {
	case *Sector:
		return v, nil
	case *StreamingSector:
		return v.Sector, nil
	}
	return nil, errors.Newf(errors.ErrNotFound, "board object %q is not a sector", id).WithDetail("object", id)
}

// StreamingSector looks a child streaming sector up by id
func (b *Board) StreamingSector(id string) (*StreamingSector, error) {
	obj, err := b.Get(id)
	if err != nil {
		return nil, err
	}
	if s, ok := obj.(*StreamingSector); ok {
		return s, nil
	}
	return nil, errors.Newf(errors.ErrNotFound, "board object %q is not a streaming sector", id).WithDetail("object", id)
}

// Line looks a child line up by id
func (b *Board) Line(id string) (*Line, error) {
	obj, err := b.Get(id)
	if err != nil {
		return nil, err
	}
	if l, ok := obj.(*Line); ok {
		return l, nil
	}
	return nil, errors.Newf(errors.ErrNotFound, "board object %q is not a line", id).WithDetail("object", id)
}

// Objects returns the children in insertion order
func (b *Board) Objects() []Object {
	out := make([]Object, len(b.objects))
	copy(out, b.objects)
	return out
}

// Remove removes children by id. All ids are checked first: if any is
// missing nothing is removed.
func (b *Board) Remove(ids ...string) error {
	for _, id := range ids {
		if _, ok := b.index[id]; !ok {
			return b.notFound(id)
		}
	}
	for _, id := range ids {
		obj, ok := b.index[id]
		if !ok {
			continue
		}
		b.detach(b.position(obj))
	}
	return nil
}

// RemoveObject removes a child by identity
func (b *Board) RemoveObject(obj Object) error {
	i := b.position(obj)
	if i < 0 {
		return errors.New(errors.ErrNotFound, "board does not contain this object")
	}
	b.detach(i)
	return nil
}

func (b *Board) detach(i int) {
	obj := b.objects[i]
	b.objects = append(b.objects[:i], b.objects[i+1:]...)
	if id := obj.ID(); id != "" {
		delete(b.index, id)
	}
}

// Clear removes every child
func (b *Board) Clear() {
	b.objects = nil
	b.index = make(map[string]Object)
}

// Rows renders one frame: the children in order, then blank rows up to
// Capacity, so a frame is always exactly Capacity rows
func (b *Board) Rows() []string {
	rows := make([]string, 0, b.capacity)
	for _, obj := range b.objects {
		rows = append(rows, obj.Rows()...)
	}
	for len(rows) < b.capacity {
		rows = append(rows, "")
	}
	return rows
}

// Draw writes one frame over the previous one. With clearScreen the whole
// screen is reset first; otherwise exactly Capacity rows below the origin
// are erased using relative motion only, so the terminal never scrolls.
func (b *Board) Draw(clearScreen bool) error {
	if clearScreen {
		b.driver.ResetScreen(false)
	} else {
		b.driver.SetCursor(1, 1)
		b.erase()
	}

	if err := writeRows(b.driver, b.Rows()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write board")
	}
	if err := b.driver.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to flush board")
	}

	b.frames++
	b.logger.Trace().Int("frame", b.frames).Bool("clear", clearScreen).Msg("Board drawn")
	return nil
}

func (b *Board) erase() {
	b.driver.SaveCursor()
	for i := 0; i < b.capacity; i++ {
		b.driver.ClearLine()
		b.driver.MoveCursor(terminal.Down, 1)
	}
	b.driver.RestoreCursor()
}

// Redraw runs fn and draws the board if it succeeds
func (b *Board) Redraw(clearScreen bool, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	return b.Draw(clearScreen)
}

// Close moves the cursor past the reserved region so later output does not
// land on the board
func (b *Board) Close() error {
	b.driver.MoveCursor(terminal.Down, b.capacity)
	if err := b.driver.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to flush board")
	}
	b.logger.Debug().Int("frames", b.frames).Msg("Board closed")
	return nil
}

func (b *Board) notFound(id string) error {
	return errors.Newf(errors.ErrNotFound, "board has no object %q", id).
		WithDetail("object", id)
}
