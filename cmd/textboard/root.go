package textboard

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/textboard/internal/version"
	"github.com/arthur-debert/textboard/pkg/cobrax/topics"
	"github.com/arthur-debert/textboard/pkg/errors"
	"github.com/arthur-debert/textboard/pkg/logging"
	"github.com/arthur-debert/textboard/pkg/terminal"
)

// globalOptions are the flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
	rows       int
	clear      bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "textboard",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// the board owns a terminal stdout; log to the file only then
			if terminal.IsTerminal(os.Stdout) {
				logging.SetupLogger(opts.verbosity, nil)
			} else {
				logging.SetupLogger(opts.verbosity, os.Stderr)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().IntVar(&opts.rows, "rows", 0, MsgFlagRows)
	rootCmd.PersistentFlags().BoolVar(&opts.clear, "clear", false, MsgFlagClear)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newTailCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if _, err := topics.Install(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
