package textboard

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/textboard/pkg/board"
	"github.com/arthur-debert/textboard/pkg/config"
	"github.com/arthur-debert/textboard/pkg/dashboard"
	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
	"github.com/arthur-debert/textboard/pkg/style"
	"github.com/arthur-debert/textboard/pkg/terminal"
)

// streamOptions are the flags of the commands that draw a board
type streamOptions struct {
	title     string
	timestamp bool
	width     int
	noHeader  bool
	noStatus  bool
}

func (o *streamOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.title, "title", "", MsgFlagTitle)
	cmd.Flags().BoolVar(&o.timestamp, "timestamp", false, MsgFlagTimestamp)
	cmd.Flags().IntVar(&o.width, "width", 0, MsgFlagWidth)
	cmd.Flags().BoolVar(&o.noHeader, "no-header", false, MsgFlagNoHeader)
	cmd.Flags().BoolVar(&o.noStatus, "no-status", false, MsgFlagNoStatus)
}

// loadConfig layers the flags that were set on top of the configuration
func loadConfig(cmd *cobra.Command, g *globalOptions, s *streamOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("rows") {
		overrides["board.rows"] = g.rows
	}
	if flags.Changed("clear") {
		overrides["board.clear_screen"] = g.clear
	}
	if s != nil {
		if flags.Changed("title") {
			overrides["stream.title"] = s.title
		}
		if flags.Changed("timestamp") {
			overrides["stream.timestamp"] = s.timestamp
		}
		if flags.Changed("width") {
			overrides["stream.width"] = s.width
		}
		if flags.Changed("no-header") {
			overrides["header.enabled"] = !s.noHeader
		}
		if flags.Changed("no-status") {
			overrides["status.enabled"] = !s.noStatus
		}
	}
	return config.Load(config.Options{Path: g.configPath, Overrides: overrides})
}

// newDashboard prepares styles for the output and builds the dashboard
func newDashboard(cmd *cobra.Command, cfg *config.Config, label string) (*dashboard.Dashboard, error) {
	out := cmd.OutOrStdout()
	if cfg.Styles.Theme != "" {
		if err := style.LoadTheme(cfg.Styles.Theme); err != nil {
			return nil, errors.Wrapf(err, errors.ErrStyleLoad, MsgErrLoadTheme, cfg.Styles.Theme).
				WithDetail("path", cfg.Styles.Theme)
		}
	}
	if !terminal.ColorSupported(out) {
		style.Disable()
	}
	return dashboard.New(cfg, label, dashboard.WithOutput(out))
}

// stream runs src through d and settles the final state. sourceErr is
// called once the source is drained and reports how it ended.
func stream(ctx context.Context, d *dashboard.Dashboard, src board.LineSource, sourceErr func() error) error {
	logger := logging.WithFields(map[string]interface{}{
		"component": "cmd.stream",
		"plain":     d.Plain(),
	})
	done := logging.LogOperationStart(logger, "stream")
	defer done()

	runErr := d.Run(ctx, src)
	result := sourceErr()
	if runErr != nil && !stderrors.Is(runErr, context.Canceled) {
		result = runErr
	}

	d.Finish(result)
	if err := d.Refresh(); err != nil && result == nil {
		result = err
	}
	if err := d.Close(); err != nil && result == nil {
		result = err
	}
	return result
}

// ExitCode returns the status the process should exit with for err, and
// whether err still has to be reported. A watched command that failed has
// already shown its output, so only its own exit code is passed on.
func ExitCode(err error) (int, bool) {
	if errors.GetErrorCode(err) == errors.ErrSourceExit {
		if code, ok := errors.GetErrorDetails(err)["exit_code"].(int); ok && code > 0 {
			return code, false
		}
	}
	if err == nil {
		return 0, false
	}
	return 1, true
}

// closeQuietly closes c, ignoring the error, for inputs read to the end
func closeQuietly(c io.Closer) {
	_ = c.Close()
}
