package dashboard

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/textboard/pkg/board"
	"github.com/arthur-debert/textboard/pkg/config"
	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
	"github.com/arthur-debert/textboard/pkg/style"
	"github.com/arthur-debert/textboard/pkg/terminal"
)

// Board object and field ids
const (
	HeaderID = "header"
	StreamID = "stream"
	StatusID = "status"

	TimeField    = "time"
	CommandField = "command"
	ElapsedField = "elapsed"
	CountField   = "count"
	StateField   = "state"
)

// Styles used for the final state
const (
	SuccessStyle   = "Success"
	ErrorStyle     = "Error"
	TimestampStyle = "Timestamp"
)

// Dashboard draws a line source as header, stream and status
type Dashboard struct {
	cfg      *config.Config
	label    string
	board    *board.Board
	header   *board.Line
	stream   *board.StreamingSector
	status   *board.Line
	styles   *style.Registry
	out      io.Writer
	driver   terminal.Driver
	plain    bool
	clock    func() time.Time
	started  time.Time
	finished bool
	logger   zerolog.Logger
}

// Option configures a Dashboard
type Option func(*Dashboard)

// WithOutput draws to w. Output that is not a terminal switches to plain
// mode unless WithPlain says otherwise.
func WithOutput(w io.Writer) Option {
	return func(d *Dashboard) {
		d.out = w
		d.plain = !terminal.IsTerminal(w)
	}
}

// WithDriver draws through drv instead of a driver built for the output
func WithDriver(drv terminal.Driver) Option {
	return func(d *Dashboard) {
		d.driver = drv
	}
}

// WithPlain forces plain mode on or off. In plain mode lines are printed as
// they arrive and nothing is redrawn.
func WithPlain(plain bool) Option {
	return func(d *Dashboard) {
		d.plain = plain
	}
}

// WithClock replaces time.Now
func WithClock(clock func() time.Time) Option {
	return func(d *Dashboard) {
		d.clock = clock
	}
}

// WithStyles resolves style names in r instead of the default registry
func WithStyles(r *style.Registry) Option {
	return func(d *Dashboard) {
		d.styles = r
	}
}

// New builds the board described by cfg. label names the source in the
// header, typically the command line.
func New(cfg *config.Config, label string, opts ...Option) (*Dashboard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Dashboard{
		cfg:    cfg,
		label:  label,
		styles: style.Default,
		clock:  time.Now,
		logger: logging.GetLogger("dashboard"),
	}
	WithOutput(os.Stdout)(d)
	for _, opt := range opts {
		opt(d)
	}
	if err := d.checkStyles(); err != nil {
		return nil, err
	}
	if d.driver == nil {
		d.driver = terminal.New(d.out)
	}
	d.started = d.clock()

	if err := d.build(); err != nil {
		return nil, err
	}
	d.logger.Debug().
		Str("label", label).
		Int("rows", cfg.Board.Rows).
		Int("stream_capacity", cfg.StreamCapacity()).
		Bool("plain", d.plain).
		Msg("Dashboard created")
	return d, nil
}

func (d *Dashboard) checkStyles() error {
	names := map[string]string{
		"header.style":       d.cfg.Header.Style,
		"stream.title_style": d.cfg.Stream.TitleStyle,
		"stream.line_style":  d.cfg.Stream.LineStyle,
		"status.style":       d.cfg.Status.Style,
	}
	for key, name := range names {
		if name != "" && !d.styles.Has(name) {
			return errors.Newf(errors.ErrConfigValid, "%s names unknown style %q", key, name).
				WithDetail("key", key).
				WithDetail("value", name)
		}
	}
	return nil
}

func (d *Dashboard) build() error {
	b, err := board.New(d.cfg.Board.Rows, board.WithID("textboard"), board.WithDriver(d.driver))
	if err != nil {
		return err
	}
	d.board = b

	if d.cfg.Header.Enabled {
		d.header = board.NewLine(HeaderID)
		headerStyle := d.styles.Named(d.cfg.Header.Style)
		if err := d.header.AddField(CommandField, board.Text(d.label), board.Style(headerStyle)); err != nil {
			return err
		}
		if err := d.header.AddField(ElapsedField, board.Style(d.styles.Named(TimestampStyle))); err != nil {
			return err
		}
		if err := b.Add(d.header); err != nil {
			return err
		}
	}

	stream, err := d.buildStream()
	if err != nil {
		return err
	}
	d.stream = stream
	if err := b.Add(stream); err != nil {
		return err
	}

	if d.cfg.Status.Enabled {
		d.status = board.NewLine(StatusID)
		statusStyle := d.styles.Named(d.cfg.Status.Style)
		if err := d.status.AddField(CountField, board.Style(statusStyle)); err != nil {
			return err
		}
		if err := d.status.AddField(StateField, board.Style(statusStyle)); err != nil {
			return err
		}
		if err := b.Add(d.status); err != nil {
			return err
		}
	}

	d.update()
	return nil
}

func (d *Dashboard) buildStream() (*board.StreamingSector, error) {
	sc := d.cfg.Stream
	width := sc.Width
	if width == 0 {
		width = board.AutoWidth
	}

	var fields []*board.Field
	var opts []board.SectorOption
	if sc.Timestamp {
		sample := d.clock().Format(sc.TimestampFormat)
		tf, err := board.NewField(TimeField,
			board.Width(utf8.RuneCountInString(sample)+1),
			board.Style(d.styles.Named(TimestampStyle)))
		if err != nil {
			return nil, err
		}
		fields = append(fields, tf)
		opts = append(opts, board.WithFieldGenerator(TimeField, func() string {
			return d.clock().Format(sc.TimestampFormat)
		}))
	}
	text, err := board.NewField(board.TextField, board.Width(width), board.Style(d.styles.Named(sc.LineStyle)))
	if err != nil {
		return nil, err
	}
	fields = append(fields, text)

	tmpl, err := board.NewLineTemplate(fields...)
	if err != nil {
		return nil, err
	}
	opts = append(opts, board.WithTemplate(tmpl), board.WithDrawEmpty(sc.DrawEmpty))

	if sc.Title != "" {
		title := board.NewLine("")
		if err := title.AddField(board.TextField, board.Text(sc.Title), board.Style(d.styles.Named(sc.TitleStyle))); err != nil {
			return nil, err
		}
		opts = append(opts, board.WithTitle(title))
	}

	return board.NewStreamingSector(StreamID, d.cfg.StreamCapacity(), opts...)
}

// Board returns the underlying board
func (d *Dashboard) Board() *board.Board {
	return d.board
}

// Stream returns the streaming sector
func (d *Dashboard) Stream() *board.StreamingSector {
	return d.stream
}

// Plain reports whether lines are printed instead of redrawn
func (d *Dashboard) Plain() bool {
	return d.plain
}

// Ingest appends a line from the source. In plain mode it is also printed
// right away.
func (d *Dashboard) Ingest(line string) error {
	if err := d.stream.Ingest(line); err != nil {
		return err
	}
	return d.printLast()
}

// Update pulls one line from src into the stream. It returns false once src
// is exhausted. In plain mode the line is also printed right away.
func (d *Dashboard) Update(src board.LineSource) (bool, error) {
	more, err := d.stream.Update(src)
	if err != nil || !more {
		return false, err
	}
	return true, d.printLast()
}

func (d *Dashboard) printLast() error {
	if !d.plain {
		return nil
	}
	lines := d.stream.Lines()
	last := lines[len(lines)-1]
	if _, err := fmt.Fprintln(d.out, last.Render()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write line")
	}
	return nil
}

// Finish records how the source ended. A nil err is a success; an error
// carrying an exit code reports it.
func (d *Dashboard) Finish(err error) {
	d.update()
	d.finished = true
	if d.status == nil {
		return
	}
	field, _ := d.status.Field(StateField)

	switch {
	case err == nil:
		field.SetText(" · done")
		field.SetStyle(d.styles.Named(SuccessStyle))
	case errors.IsErrorCode(err, errors.ErrSourceExit):
		field.SetText(fmt.Sprintf(" · exit %v", errors.GetErrorDetails(err)["exit_code"]))
		field.SetStyle(d.styles.Named(ErrorStyle))
	default:
		field.SetText(" · failed: " + err.Error())
		field.SetStyle(d.styles.Named(ErrorStyle))
	}
	d.logger.Debug().Err(err).Int("lines", d.stream.Ingested()).Msg("Source finished")
}

// Elapsed returns the time since the dashboard was created
func (d *Dashboard) Elapsed() time.Duration {
	return d.clock().Sub(d.started)
}

func (d *Dashboard) update() {
	if d.header != nil && !d.finished {
		_ = d.header.SetText(ElapsedField, fmt.Sprintf(" (%s)", d.Elapsed().Round(time.Second)))
	}
	if d.status != nil {
		_ = d.status.SetText(CountField, countText(d.stream.Ingested()))
		if !d.finished {
			_ = d.status.SetText(StateField, " · running")
		}
	}
}

func countText(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

// Refresh updates the header and status and draws a frame. It does nothing
// in plain mode.
func (d *Dashboard) Refresh() error {
	if d.plain {
		return nil
	}
	d.update()
	return d.board.Draw(d.cfg.Board.ClearScreen)
}

// Close leaves the cursor below the board. In plain mode the status line,
// if any, is printed once.
func (d *Dashboard) Close() error {
	if d.plain {
		if d.status == nil {
			return nil
		}
		d.update()
		if _, err := fmt.Fprintln(d.out, d.status.Render()); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write status")
		}
		return nil
	}
	return d.board.Close()
}
