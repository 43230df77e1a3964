package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// prettierDefaults derives external formatter settings from the stylistic
// ones so both agree.
func prettierDefaults(style options.StylisticOptions) map[string]any {
	style = style.WithDefaults()
	out := map[string]any{
		"endOfLine":     "auto",
		"printWidth":    120,
		"semi":          *style.Semi,
		"singleQuote":   style.Quotes == "single",
		"tabWidth":      2,
		"trailingComma": "all",
		"useTabs":       style.Indent == "tab",
	}
	if n, ok := indentWidth(style.Indent); ok {
		out["tabWidth"] = n
	}
	return out
}

// Formatters hands CSS, HTML, markdown and GraphQL files to an external
// formatter through lint rules. Each language is opt-in.
func Formatters(ctx context.Context, loader types.PluginLoader, opts options.FormattersOptions, style options.StylisticOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Format)
	if err != nil {
		return nil, err
	}

	base := prettierDefaults(style)
	for k, v := range opts.PrettierOptions {
		base[k] = v
	}
	prettier := func(parser string) types.RuleEntry {
		settings := make(map[string]any, len(base)+1)
		for k, v := range base {
			settings[k] = v
		}
		settings["parser"] = parser
		return ruleError(settings)
	}
	plain := func() *types.LanguageOptions {
		return &types.LanguageOptions{Parser: parserFor(plugins.Format)}
	}

	fragments := []types.RuleFragment{{
		Name:    Name("formatter", "setup"),
		Plugins: pluginNames,
	}}

	if opts.CSS {
		fragments = append(fragments, types.RuleFragment{
			Name:            Name("formatter", "css"),
			Files:           []string{GlobCSS, GlobPostCSS, GlobLess, GlobSCSS},
			LanguageOptions: plain(),
			Rules:           types.Rules{"format/prettier": prettier("css")},
		})
	}
	if opts.HTML {
		fragments = append(fragments, types.RuleFragment{
			Name:            Name("formatter", "html"),
			Files:           []string{GlobHTML},
			LanguageOptions: plain(),
			Rules:           types.Rules{"format/prettier": prettier("html")},
		})
	}
	if opts.Markdown {
		fragments = append(fragments, types.RuleFragment{
			Name:            Name("formatter", "markdown"),
			Files:           []string{GlobMarkdown},
			Ignores:         []string{GlobMarkdownInMD},
			LanguageOptions: plain(),
			Rules:           types.Rules{"format/prettier": prettier("markdown")},
		})
	}
	if opts.GraphQL {
		fragments = append(fragments, types.RuleFragment{
			Name:            Name("formatter", "graphql"),
			Files:           []string{GlobGraphQL},
			LanguageOptions: plain(),
			Rules:           types.Rules{"format/prettier": prettier("graphql")},
		})
	}

	return fragments, nil
}

// indentWidth reads a numeric indent decoded from any config format.
func indentWidth(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
