package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/flatlint/cmd/flatlint"
	"github.com/arthur-debert/flatlint/internal/version"
)

// Writes flatlint.1 to stdout, or one page per command into the directory
// given as the only argument.
func main() {
	rootCmd := flatlint.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FLATLINT",
		Section: "1",
		Source:  "flatlint " + version.Version,
		Manual:  "flatlint manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
