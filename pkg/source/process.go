package source

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
)

// Process is a running command whose stdout and stderr are read as one
// line source, either through a pipe or a pseudo-terminal
type Process struct {
	*Reader
	cmd     *exec.Cmd
	pipe    *os.File
	started time.Time
	logger  zerolog.Logger

	waitOnce  sync.Once
	waitErr   error
	closeOnce sync.Once

	mu       sync.Mutex
	exited   bool
	exitCode int
	elapsed  time.Duration
}

type processOptions struct {
	dir string
	env []string
	pty bool
}

// ProcessOption configures a Process before it starts
type ProcessOption func(*processOptions)

// WithDir runs the command in dir
func WithDir(dir string) ProcessOption {
	return func(o *processOptions) {
		o.dir = dir
	}
}

// WithEnv appends KEY=value pairs to the inherited environment
func WithEnv(env ...string) ProcessOption {
	return func(o *processOptions) {
		o.env = append(o.env, env...)
	}
}

// WithPTY runs the command on a pseudo-terminal, so it behaves as it would
// interactively: line-buffered output, colors left on. Lines end in \r\n,
// which the reader trims.
func WithPTY() ProcessOption {
	return func(o *processOptions) {
		o.pty = true
	}
}

// Start runs name with args. Both output streams are connected to the same
// pipe so their lines interleave as the command writes them. Cancelling ctx
// kills the command.
func Start(ctx context.Context, name string, args []string, opts ...ProcessOption) (*Process, error) {
	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "command must not be empty")
	}

	o := processOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = o.dir
	if len(o.env) > 0 {
		cmd.Env = append(os.Environ(), o.env...)
	}

	logger := logging.GetLogger("source.process").With().
		Str("command", name).
		Strs("args", args).
		Bool("pty", o.pty).
		Logger()

	start := startPipe
	if o.pty {
		start = startPTY
	}
	out, err := start(cmd)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceStart, "failed to start %q", name).
			WithDetail("command", name)
	}

	logger.Debug().Int("pid", cmd.Process.Pid).Msg("Process started")
	var r io.Reader = out
	if o.pty {
		r = ptyReader{out}
	}
	return &Process{
		Reader:   NewReader(r),
		cmd:      cmd,
		pipe:     out,
		started:  time.Now(),
		logger:   logger,
		exitCode: -1,
	}, nil
}

func startPipe(cmd *exec.Cmd) (*os.File, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	cmd.Stdout = pw
	cmd.Stderr = pw
	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return nil, err
	}
	// the child holds its own copy of the write end; EOF arrives when it exits
	_ = pw.Close()
	return pr, nil
}

func startPTY(cmd *exec.Cmd) (*os.File, error) {
	return pty.Start(cmd)
}

// ptyReader reports the EIO a pty master returns once the child side is
// closed as a plain end of stream
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if err != nil && stderrors.Is(err, syscall.EIO) {
		err = io.EOF
	}
	return n, err
}

// Command returns the command line as typed
func (p *Process) Command() string {
	return strings.Join(p.cmd.Args, " ")
}

// Pid returns the process id
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Elapsed returns the run time so far, or the total once Wait returned
func (p *Process) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.exited {
		return p.elapsed
	}
	return time.Since(p.started)
}

// Wait waits for the command to exit and releases the pipe. Read all lines
// first: output still in the pipe is discarded. A non-zero exit is reported
// as SOURCE_EXIT. Wait may be called more than once.
func (p *Process) Wait() error {
	p.waitOnce.Do(func() {
		err := p.cmd.Wait()
		_ = p.Close()

		p.mu.Lock()
		p.exited = true
		p.elapsed = time.Since(p.started)
		if p.cmd.ProcessState != nil {
			p.exitCode = p.cmd.ProcessState.ExitCode()
		}
		exitCode := p.exitCode
		p.mu.Unlock()

		p.logger.Debug().
			Int("exit_code", exitCode).
			Dur("elapsed", p.Elapsed()).
			Int("lines", p.Lines()).
			Msg("Process exited")

		if err == nil {
			return
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			p.waitErr = errors.Wrapf(err, errors.ErrSourceExit, "%s exited with code %d", p.cmd.Args[0], exitCode).
				WithDetail("exit_code", exitCode)
			return
		}
		p.waitErr = errors.Wrap(err, errors.ErrSourceRead, "failed waiting for command")
	})
	return p.waitErr
}

// Close releases the pipe. A ReadLine blocked on it returns an error, and
// the command gets SIGPIPE on its next write. Wait still has to be called.
func (p *Process) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.pipe.Close()
	})
	return err
}

// ExitCode returns the exit code, or -1 while the command is running or
// when it was killed by a signal
func (p *Process) ExitCode() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exitCode
}

// Exited reports whether Wait has returned
func (p *Process) Exited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exited
}
