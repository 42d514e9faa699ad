package textboard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/textboard/pkg/config"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	var template, path bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case template:
				fmt.Fprintln(out, config.GenerateConfigContent())
				return nil
			case path:
				fmt.Fprintln(out, config.DefaultPath())
				return nil
			}

			cfg, err := loadConfig(cmd, g, nil)
			if err != nil {
				return err
			}
			dump, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(out, dump)
			return nil
		},
	}
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)
	cmd.MarkFlagsMutuallyExclusive("template", "path")
	return cmd
}
