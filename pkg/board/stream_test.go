package board_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textboard/pkg/board"
	"github.com/arthur-debert/textboard/pkg/errors"
)

// sliceSource yields its lines then io.EOF
type sliceSource struct {
	lines []string
	err   error
}

func (s *sliceSource) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestStreamingSectorKeepsNewest(t *testing.T) {
	s, err := board.NewStreamingSector("log", 2)
	require.NoError(t, err)

	for _, raw := range []string{"a", "b", "c"} {
		require.NoError(t, s.Ingest(raw))
	}
	assert.Equal(t, []string{"b", "c"}, lineTexts(s.Lines()))
	assert.Equal(t, 3, s.Ingested())
}

func TestStreamingSectorFIFO(t *testing.T) {
	const capacity = 3
	s, err := board.NewStreamingSector("log", capacity, board.WithTitle(textLine(t, "", "Log")))
	require.NoError(t, err)

	for n := 1; n <= 10; n++ {
		require.NoError(t, s.Ingest(fmt.Sprintf("line %d", n)))

		first := n - capacity + 1
		if first < 1 {
			first = 1
		}
		var want []string
		for i := first; i <= n; i++ {
			want = append(want, fmt.Sprintf("line %d", i))
		}
		assert.Equal(t, want, lineTexts(s.Lines()), "after %d lines", n)
		assert.Equal(t, "Log", s.Title().Render())
		assert.LessOrEqual(t, s.RowsUsed(), s.RowBudget())
	}
}

func TestStreamingSectorRowsKeepHeight(t *testing.T) {
	s, err := board.NewStreamingSector("log", 3, board.WithTitle(textLine(t, "", "Log")))
	require.NoError(t, err)

	frames := [][]string{
		{"Log", "a", "", ""},
		{"Log", "a", "b", ""},
		{"Log", "a", "b", "c"},
		{"Log", "b", "c", "d"},
		{"Log", "c", "d", "e"},
	}
	for i, want := range frames {
		require.NoError(t, s.Ingest(string(rune('a'+i))))
		if diff := cmp.Diff(want, s.Rows()); diff != "" {
			t.Errorf("rows after %d lines (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestStreamingSectorCapacityOne(t *testing.T) {
	s, err := board.NewStreamingSector("log", 1)
	require.NoError(t, err)

	require.NoError(t, s.Ingest("first"))
	require.NoError(t, s.Ingest("second"))
	assert.Equal(t, []string{"second"}, lineTexts(s.Lines()))
}

func TestNewStreamingSectorValidation(t *testing.T) {
	_, err := board.NewStreamingSector("log", 0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = board.NewStreamingSector("", 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	noText, err := board.NewLineTemplate(mustField(t, "other"))
	require.NoError(t, err)
	_, err = board.NewStreamingSector("log", 2, board.WithTemplate(noText))
	assert.True(t, errors.IsErrorCode(err, errors.ErrShapeMismatch))

	_, err = board.NewStreamingSector("log", 2, board.WithFieldValue("unknown", "x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrShapeMismatch))
}

func TestStreamingSectorTemplateAndGenerators(t *testing.T) {
	tmpl, err := board.NewLineTemplate(
		mustField(t, "seq", board.Width(4)),
		mustField(t, "src", board.Width(4)),
		mustField(t, board.TextField),
	)
	require.NoError(t, err)

	seq := 0
	s, err := board.NewStreamingSector("log", 3,
		board.WithTemplate(tmpl),
		board.WithFieldValue("src", "out"),
		board.WithFieldGenerator("seq", func() string {
			seq++
			return fmt.Sprint(seq)
		}),
	)
	require.NoError(t, err)
	assert.Same(t, tmpl, s.Template())

	require.NoError(t, s.Ingest("hello"))
	require.NoError(t, s.Ingest("world"))
	assert.Equal(t, []string{"1   out hello", "2   out world"}, lineTexts(s.Lines()))

	// the template itself is never filled in
	assert.Equal(t, strings.Repeat(" ", 8), tmpl.New("").Render())
}

func TestStreamingSectorLineHandler(t *testing.T) {
	s, err := board.NewStreamingSector("log", 2, board.WithLineHandler(func(l *board.Line) {
		f, _ := l.Field(board.TextField)
		f.SetStyle(bracketStyle{})
	}))
	require.NoError(t, err)

	require.NoError(t, s.Ingest("x"))
	assert.Equal(t, []string{"<x>"}, lineTexts(s.Lines()))
}

func TestStreamingSectorStripsNewlinesOnRender(t *testing.T) {
	s, err := board.NewStreamingSector("log", 2)
	require.NoError(t, err)

	require.NoError(t, s.Ingest("with newline\n"))
	assert.Equal(t, []string{"with newline"}, s.Rows()[:1])
}

func TestStreamingSectorUpdate(t *testing.T) {
	s, err := board.NewStreamingSector("log", 2)
	require.NoError(t, err)
	src := &sliceSource{lines: []string{"a", "b", "c"}}

	for i := 0; i < 3; i++ {
		ok, err := s.Update(src)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := s.Update(src)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "c"}, lineTexts(s.Lines()))
	assert.Equal(t, 3, s.Ingested())
}

func TestStreamingSectorUpdateReadError(t *testing.T) {
	s, err := board.NewStreamingSector("log", 2)
	require.NoError(t, err)
	require.NoError(t, s.Ingest("kept"))

	boom := fmt.Errorf("boom")
	ok, err := s.Update(&sliceSource{err: boom})
	assert.False(t, ok)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"kept"}, lineTexts(s.Lines()))
}

func TestLineSourceFunc(t *testing.T) {
	calls := 0
	src := board.LineSourceFunc(func() (string, error) {
		calls++
		if calls > 1 {
			return "", io.EOF
		}
		return "only", nil
	})

	s, err := board.NewStreamingSector("log", 2)
	require.NoError(t, err)

	ok, err := s.Update(src)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Update(src)
	require.NoError(t, err)
	assert.False(t, ok)
}
