package source

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/textboard/pkg/errors"
)

// Reader yields the lines of an io.Reader without their terminators.
// Lines may be arbitrarily long. A final line with no newline is returned
// before io.EOF.
type Reader struct {
	r     *bufio.Reader
	lines atomic.Int64
}

// NewReader wraps r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line, or io.EOF once the input is exhausted
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return "", errors.Wrap(err, errors.ErrSourceRead, "failed to read line")
		}
		if line == "" {
			return "", io.EOF
		}
	}
	r.lines.Add(1)
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Lines returns how many lines were read so far. It is safe to call while
// another goroutine reads.
func (r *Reader) Lines() int {
	return int(r.lines.Load())
}
