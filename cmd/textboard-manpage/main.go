package main

import (
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/textboard/cmd/textboard"
	"github.com/arthur-debert/textboard/internal/version"
	"github.com/arthur-debert/textboard/pkg/logging"
)

func main() {
	rootCmd := textboard.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TEXTBOARD",
		Section: "1",
		Source:  "textboard " + version.Version,
		Manual:  "textboard manual",
	}

	logging.Must(doc.GenMan(rootCmd, header, os.Stdout), "failed to generate man page")
}
