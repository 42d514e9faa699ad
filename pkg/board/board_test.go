package board_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textboard/pkg/board"
	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/terminal"
)

// recordingDriver records driver calls through testify's mock and keeps the
// written rows in a buffer
type recordingDriver struct {
	mock.Mock
	out bytes.Buffer
}

func newRecordingDriver() *recordingDriver {
	d := &recordingDriver{}
	d.On("ResetScreen", mock.Anything).Return()
	d.On("SetCursor", mock.Anything, mock.Anything).Return()
	d.On("SaveCursor").Return()
	d.On("RestoreCursor").Return()
	d.On("ClearLine").Return()
	d.On("MoveCursor", mock.Anything, mock.Anything).Return()
	return d
}

func (d *recordingDriver) Write(p []byte) (int, error)      { return d.out.Write(p) }
func (d *recordingDriver) ResetScreen(eraseScrollback bool) { d.Called(eraseScrollback) }
func (d *recordingDriver) SetCursor(row, col int)           { d.Called(row, col) }
func (d *recordingDriver) SaveCursor()                      { d.Called() }
func (d *recordingDriver) RestoreCursor()                   { d.Called() }
func (d *recordingDriver) ClearLine()                       { d.Called() }

func (d *recordingDriver) MoveCursor(dir terminal.Direction, by int) {
	d.Called(dir, by)
}

func (d *recordingDriver) Flush() error {
	args := d.Called()
	return args.Error(0)
}

func (d *recordingDriver) ops() []string {
	out := make([]string, 0, len(d.Calls))
	for _, c := range d.Calls {
		out = append(out, fmt.Sprintf("%s%v", c.Method, c.Arguments))
	}
	return out
}

func newTestBoard(t *testing.T, capacity int) (*board.Board, *recordingDriver) {
	t.Helper()
	d := newRecordingDriver()
	d.On("Flush").Return(nil)
	b, err := board.New(capacity, board.WithDriver(d))
	require.NoError(t, err)
	return b, d
}

func TestNewBoard(t *testing.T) {
	_, err := board.New(-1)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	b, err := board.New(5, board.WithID("main"), board.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, "main", b.ID())
	assert.Equal(t, 5, b.Capacity())
	assert.Equal(t, 5, b.Free())
}

func TestBoardAdmission(t *testing.T) {
	b, _ := newTestBoard(t, 5)

	sector, err := board.NewSector("s", 3, board.WithTitle(textLine(t, "", "Title")))
	require.NoError(t, err)
	require.NoError(t, b.Add(sector))
	assert.Equal(t, 4, b.RowsUsed())

	require.NoError(t, b.Add(textLine(t, "status", "ok")))
	assert.Equal(t, 0, b.Free())

	err = b.Add(textLine(t, "extra", "no room"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCapacityExceeded))
	assert.Len(t, b.Objects(), 2)
	assert.Equal(t, map[string]interface{}{"object": "extra", "budget": 1, "free": 0}, errors.GetErrorDetails(err))
}

func TestBoardChargesBudgetNotUsage(t *testing.T) {
	b, _ := newTestBoard(t, 3)

	empty, err := board.NewSector("s", 3)
	require.NoError(t, err)
	require.NoError(t, b.Add(empty))

	err = b.Add(textLine(t, "l", "x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCapacityExceeded))
}

func TestBoardAddIsPerItem(t *testing.T) {
	b, _ := newTestBoard(t, 2)

	err := b.Add(textLine(t, "a", "a"), textLine(t, "b", "b"), textLine(t, "c", "c"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCapacityExceeded))
	assert.Len(t, b.Objects(), 2)
}

func TestBoardRejectsDuplicates(t *testing.T) {
	b, _ := newTestBoard(t, 5)

	require.NoError(t, b.Add(textLine(t, "a", "a")))
	assert.True(t, errors.IsErrorCode(b.Add(textLine(t, "a", "a")), errors.ErrDuplicateID))

	anon := textLine(t, "", "anon")
	require.NoError(t, b.Add(anon))
	assert.True(t, errors.IsErrorCode(b.Add(anon), errors.ErrDuplicateID))
	assert.True(t, errors.IsErrorCode(b.Add(nil), errors.ErrInvalidInput))
}

func TestBoardTypedLookup(t *testing.T) {
	b, _ := newTestBoard(t, 10)
	sector, err := board.NewSector("sector", 2)
	require.NoError(t, err)
	stream, err := board.NewStreamingSector("stream", 2)
	require.NoError(t, err)
	line := textLine(t, "line", "x")
	require.NoError(t, b.Add(sector, stream, line))

	gotSector, err := b.Sector("sector")
	require.NoError(t, err)
	assert.Same(t, sector, gotSector)

	gotStreamSector, err := b.Sector("stream")
	require.NoError(t, err)
	assert.Same(t, stream.Sector, gotStreamSector)

	gotStream, err := b.StreamingSector("stream")
	require.NoError(t, err)
	assert.Same(t, stream, gotStream)

	gotLine, err := b.Line("line")
	require.NoError(t, err)
	assert.Same(t, line, gotLine)

	_, err = b.Line("sector")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = b.Sector("line")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = b.StreamingSector("sector")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = b.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestBoardRemove(t *testing.T) {
	b, _ := newTestBoard(t, 3)
	require.NoError(t, b.Add(textLine(t, "a", "a"), textLine(t, "b", "b"), textLine(t, "c", "c")))

	err := b.Remove("a", "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Len(t, b.Objects(), 3)

	require.NoError(t, b.Remove("a", "c"))
	require.Len(t, b.Objects(), 1)
	assert.Equal(t, "b", b.Objects()[0].ID())
	assert.Equal(t, 2, b.Free())

	require.NoError(t, b.Add(textLine(t, "a", "again")))
}

func TestBoardRemoveObjectAndClear(t *testing.T) {
	b, _ := newTestBoard(t, 3)
	anon := textLine(t, "", "anon")
	require.NoError(t, b.Add(anon, textLine(t, "a", "a")))

	require.NoError(t, b.RemoveObject(anon))
	assert.True(t, errors.IsErrorCode(b.RemoveObject(anon), errors.ErrNotFound))

	b.Clear()
	assert.Empty(t, b.Objects())
	assert.Equal(t, 3, b.Free())
	_, err := b.Get("a")
	assert.Error(t, err)
}

func TestBoardRowsAlwaysFillCapacity(t *testing.T) {
	b, _ := newTestBoard(t, 6)
	assert.Equal(t, []string{"", "", "", "", "", ""}, b.Rows())

	sector, err := board.NewSector("s", 2, board.WithTitle(textLine(t, "", "T")))
	require.NoError(t, err)
	require.NoError(t, sector.Add(textLine(t, "x", "x")))
	require.NoError(t, b.Add(textLine(t, "h", "header"), sector))

	assert.Equal(t, []string{"header", "T", "x", "", "", ""}, b.Rows())
}

func TestBoardDrawSequence(t *testing.T) {
	b, d := newTestBoard(t, 3)
	require.NoError(t, b.Add(textLine(t, "a", "alpha")))

	require.NoError(t, b.Draw(false))

	assert.Equal(t, []string{
		"SetCursor[1 1]",
		"SaveCursor[]",
		"ClearLine[]", "MoveCursor[down 1]",
		"ClearLine[]", "MoveCursor[down 1]",
		"ClearLine[]", "MoveCursor[down 1]",
		"RestoreCursor[]",
		"Flush[]",
	}, d.ops())
	assert.Equal(t, "alpha\n\n\n", d.out.String())
	assert.Equal(t, 1, b.Frames())
}

func TestBoardDrawClearScreen(t *testing.T) {
	b, d := newTestBoard(t, 2)

	require.NoError(t, b.Draw(true))

	assert.Equal(t, []string{"ResetScreen[false]", "Flush[]"}, d.ops())
	assert.Equal(t, "\n\n", d.out.String())
}

func TestBoardDrawWritesCapacityRows(t *testing.T) {
	for _, capacity := range []int{0, 1, 5, 20} {
		t.Run(fmt.Sprint(capacity), func(t *testing.T) {
			b, d := newTestBoard(t, capacity)
			if capacity > 0 {
				require.NoError(t, b.Add(textLine(t, "a", "a")))
			}
			require.NoError(t, b.Draw(false))
			assert.Equal(t, capacity, strings.Count(d.out.String(), "\n"))
		})
	}
}

func TestBoardDrawIsIdempotent(t *testing.T) {
	var out bytes.Buffer
	b, err := board.New(4, board.WithDriver(terminal.NewForOS("linux", &out)))
	require.NoError(t, err)

	stream, err := board.NewStreamingSector("log", 2, board.WithTitle(textLine(t, "", "Log")))
	require.NoError(t, err)
	require.NoError(t, b.Add(stream, textLine(t, "status", "running")))
	require.NoError(t, stream.Ingest("one"))

	require.NoError(t, b.Draw(false))
	first := out.String()
	out.Reset()
	require.NoError(t, b.Draw(false))

	assert.Equal(t, first, out.String())
	assert.Equal(t, "\x1b[1;1H\x1b[s"+strings.Repeat("\x1b[2K\x1b[1E", 4)+"\x1b[u"+"Log\none\n\nrunning\n", first)
}

func TestBoardDrawFlushError(t *testing.T) {
	d := newRecordingDriver()
	d.On("Flush").Return(fmt.Errorf("broken pipe"))
	b, err := board.New(1, board.WithDriver(d))
	require.NoError(t, err)

	err = b.Draw(false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Equal(t, 0, b.Frames())
}

func TestBoardRedraw(t *testing.T) {
	b, d := newTestBoard(t, 1)
	line := textLine(t, "l", "before")
	require.NoError(t, b.Add(line))

	require.NoError(t, b.Redraw(false, func() error {
		return line.SetText(board.TextField, "after")
	}))
	assert.Equal(t, "after\n", d.out.String())

	boom := fmt.Errorf("boom")
	err := b.Redraw(false, func() error { return boom })
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, b.Frames())
}

func TestBoardClose(t *testing.T) {
	b, d := newTestBoard(t, 7)

	require.NoError(t, b.Close())
	assert.Equal(t, []string{"MoveCursor[down 7]", "Flush[]"}, d.ops())
}

func TestBoardIsRootOnly(t *testing.T) {
	b, _ := newTestBoard(t, 3)

	_, nestable := interface{}(b).(board.Object)
	assert.False(t, nestable)

	for _, obj := range []interface{}{textLine(t, "l", "x"), &board.Sector{}, &board.StreamingSector{}} {
		_, ok := obj.(board.Object)
		assert.True(t, ok, "%T", obj)
	}
}
