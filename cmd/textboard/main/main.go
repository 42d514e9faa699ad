package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/textboard/cmd/textboard"
	"github.com/arthur-debert/textboard/pkg/style"
)

func main() {
	rootCmd := textboard.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		code, report := textboard.ExitCode(err)
		if report {
			errorStyle := style.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(code)
	}
}
