package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/charmbracelet/glamour"
)

// Explain describes a composition as markdown: the options it was built
// from, if tagged, and every fragment in order.
func Explain(cfg compose.Config) string {
	var b strings.Builder
	b.WriteString("# Composed configuration\n\n")
	fmt.Fprintf(&b, "%d fragments, applied in order; later fragments win.\n\n", len(cfg.Fragments))

	if cfg.Tagged() {
		b.WriteString("## Options\n\n")
		keys := make([]string, 0, len(cfg.Options))
		for k := range cfg.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- `%s`: `%v`\n", k, cfg.Options[k])
		}
		b.WriteString("\n")
	}

	b.WriteString("## Fragments\n\n")
	for i, f := range cfg.Fragments {
		fmt.Fprintf(&b, "%d. **%s**", i+1, f.Name)
		switch {
		case f.IsGlobalIgnore():
			fmt.Fprintf(&b, " ignores %d globs", len(f.Ignores))
		case len(f.Files) > 0:
			fmt.Fprintf(&b, " on `%s`", strings.Join(f.Files, "`, `"))
		}
		if len(f.Plugins) > 0 {
			fmt.Fprintf(&b, ", plugins %s", strings.Join(f.Plugins, ", "))
		}
		if len(f.Rules) > 0 {
			fmt.Fprintf(&b, ", %d rules", len(f.Rules))
		}
		if f.Processor != "" {
			fmt.Fprintf(&b, ", processor `%s`", f.Processor)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MarkdownRenderer renders markdown for a terminal.
type MarkdownRenderer struct {
	// Style is a glamour style name or path; "" or "auto" detects
	Style string
	// Width wraps lines; 0 keeps glamour's default
	Width int
}

// Render returns content styled for the terminal, or content unchanged when
// rendering fails.
func (r MarkdownRenderer) Render(content string) string {
	var opts []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		opts = append(opts, glamour.WithStylePath(r.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
