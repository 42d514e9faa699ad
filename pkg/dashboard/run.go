package dashboard

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/arthur-debert/textboard/pkg/board"
)

// backlog is the LineSource the owner goroutine feeds the stream from. It
// holds lines the reader goroutine has already read and reports io.EOF when
// it is empty.
type backlog struct {
	lines []string
}

func (b *backlog) push(line string) {
	b.lines = append(b.lines, line)
}

// ReadLine implements board.LineSource
func (b *backlog) ReadLine() (string, error) {
	if len(b.lines) == 0 {
		return "", io.EOF
	}
	line := b.lines[0]
	b.lines = b.lines[1:]
	return line, nil
}

// Run streams src into the dashboard until src is exhausted or ctx is done.
// Frames are drawn at most once per refresh interval, plus a final one.
// Finish is not called; the caller knows how the source ended.
//
// src is read on its own goroutine so the board keeps redrawing while a
// read blocks; every board call stays on the calling goroutine. When Run
// stops before src is exhausted and src is an io.Closer, src is closed and
// Run returns only once the reading goroutine is gone.
func (d *Dashboard) Run(ctx context.Context, src board.LineSource) error {
	lines := make(chan string, 64)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	go func() {
		defer close(lines)
		for {
			line, err := src.ReadLine()
			if err != nil {
				if !stderrors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
			select {
			case lines <- line:
			case <-stop:
				return
			}
		}
	}()

	exhausted := false
	defer func() {
		if exhausted {
			return
		}
		close(stop)
		closer, ok := src.(io.Closer)
		if !ok {
			return
		}
		_ = closer.Close()
		for range lines {
		}
	}()

	ticker := time.NewTicker(d.cfg.Board.RefreshInterval.Std())
	defer ticker.Stop()

	if err := d.Refresh(); err != nil {
		return err
	}
	pending := &backlog{}
	dirty := false
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				exhausted = true
				var err error
				select {
				case err = <-readErr:
				default:
				}
				if drawErr := d.Refresh(); drawErr != nil && err == nil {
					err = drawErr
				}
				return err
			}
			pending.push(line)
			if err := d.drain(pending); err != nil {
				return err
			}
			dirty = true
		case <-ticker.C:
			// the header clock moves even when no line arrived
			if !dirty && d.header == nil {
				continue
			}
			if err := d.Refresh(); err != nil {
				return err
			}
			dirty = false
		case <-ctx.Done():
			if err := d.Refresh(); err != nil {
				return err
			}
			return ctx.Err()
		}
	}
}

// drain ingests every line src has to offer through the stream's Update
func (d *Dashboard) drain(src board.LineSource) error {
	for {
		more, err := d.Update(src)
		if err != nil || !more {
			return err
		}
	}
}
