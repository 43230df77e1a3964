package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/flatlint/cmd/flatlint"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/output"
)

func main() {
	rootCmd := flatlint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			for k, v := range details {
				fmt.Fprintln(os.Stderr, output.MutedStyle.Render(fmt.Sprintf("  %s: %v", k, v)))
			}
		}
		os.Exit(1)
	}
}
