package textboard

import (
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
	"github.com/arthur-debert/textboard/pkg/source"
)

// watchOptions are the flags that shape how the command is run
type watchOptions struct {
	pty      bool
	dir      string
	envFiles []string
}

func newWatchCmd(g *globalOptions) *cobra.Command {
	s := &streamOptions{}
	w := &watchOptions{}
	cmd := &cobra.Command{
		Use:     "watch [flags] -- command [args...]",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Example: MsgWatchExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrWatchUsage)
			}
			logging.LogCommand(args[0], args[1:])

			procOpts, err := w.processOptions()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, g, s)
			if err != nil {
				return err
			}
			d, err := newDashboard(cmd, cfg, "$ "+strings.Join(args, " "))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p, err := source.Start(ctx, args[0], args[1:], procOpts...)
			if err != nil {
				return err
			}
			return stream(ctx, d, p, p.Wait)
		},
	}
	cmd.Flags().SetInterspersed(false)
	s.register(cmd)
	cmd.Flags().BoolVar(&w.pty, "pty", false, MsgFlagPTY)
	cmd.Flags().StringVar(&w.dir, "dir", "", MsgFlagDir)
	cmd.Flags().StringArrayVar(&w.envFiles, "env-file", nil, MsgFlagEnvFile)
	return cmd
}

func (w *watchOptions) processOptions() ([]source.ProcessOption, error) {
	var opts []source.ProcessOption
	if w.pty {
		opts = append(opts, source.WithPTY())
	}
	if w.dir != "" {
		opts = append(opts, source.WithDir(w.dir))
	}
	if len(w.envFiles) > 0 {
		env, err := readEnvFiles(w.envFiles)
		if err != nil {
			return nil, err
		}
		opts = append(opts, source.WithEnv(env...))
	}
	return opts, nil
}

// readEnvFiles parses dotenv files into KEY=value pairs, sorted by key.
// Later files win over earlier ones.
func readEnvFiles(files []string) ([]string, error) {
	merged := map[string]string{}
	for _, file := range files {
		vars, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceStart, MsgErrEnvFile, file).
				WithDetail("path", file)
		}
		for k, v := range vars {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+merged[k])
	}
	return env, nil
}
