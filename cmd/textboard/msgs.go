package textboard

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Stream output into a fixed block of terminal rows"
	MsgWatchShort      = "Run a command and stream its output"
	MsgTailShort       = "Stream a file or standard input"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/textboard/config.toml)"
	MsgFlagRows      = "Terminal rows reserved for the board"
	MsgFlagClear     = "Clear the whole screen before every frame"
	MsgFlagTitle     = "Title drawn above the streamed lines"
	MsgFlagTimestamp = "Prefix every line with the time it was read"
	MsgFlagWidth     = "Cut lines to this many characters, 0 for no limit"
	MsgFlagNoHeader  = "Hide the header line"
	MsgFlagNoStatus  = "Hide the status line"
	MsgFlagPTY       = "Run the command on a pseudo-terminal"
	MsgFlagDir       = "Run the command in this directory"
	MsgFlagEnvFile   = "Load environment variables from a dotenv file (repeatable)"
	MsgFlagTemplate  = "Print a commented config file instead"
	MsgFlagPath      = "Print the default config file path instead"

	// Output
	MsgVersionFormat = "textboard version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrOpenInput  = "failed to open %s"
	MsgErrLoadTheme  = "failed to load theme %s"
	MsgErrEnvFile    = "failed to read env file %s"
	MsgErrWatchUsage = "watch needs a command, e.g. textboard watch -- make test"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/tail-long.txt
	msgTailLongRaw string
	MsgTailLong    = strings.TrimSpace(msgTailLongRaw)

	//go:embed msgs/tail-example.txt
	msgTailExampleRaw string
	MsgTailExample    = strings.TrimRight(msgTailExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage.txt
	MsgUsageTemplate string
)
