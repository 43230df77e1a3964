package flatlint

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/flatlint/pkg/output"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold on a terminal
func formatBold(s string) string {
	if !output.IsTerminal(os.Stdout) {
		return s
	}
	return output.Bold(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
