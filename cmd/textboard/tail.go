package textboard

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/source"
)

func newTailCmd(g *globalOptions) *cobra.Command {
	s := &streamOptions{}
	cmd := &cobra.Command{
		Use:     "tail [file]",
		Short:   MsgTailShort,
		Long:    MsgTailLong,
		Example: MsgTailExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, label, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeQuietly(input)

			cfg, err := loadConfig(cmd, g, s)
			if err != nil {
				return err
			}
			d, err := newDashboard(cmd, cfg, label)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return stream(ctx, d, source.NewReader(input), func() error { return nil })
		},
	}
	s.register(cmd)
	return cmd
}

// openInput returns the file named by args, or stdin. Closing stdin is a
// no-op.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrSourceStart, MsgErrOpenInput, args[0]).
			WithDetail("path", args[0])
	}
	return f, args[0], nil
}
