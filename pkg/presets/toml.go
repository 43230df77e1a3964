package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// TOML checks TOML files.
func TOML(ctx context.Context, loader types.PluginLoader, opts options.TOMLOptions, style *options.StylisticOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.TOML)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"style/spaced-comment":                   ruleOff(),
		"toml/comma-style":                       ruleError(),
		"toml/keys-order":                        ruleError(),
		"toml/no-space-dots":                     ruleError(),
		"toml/no-unreadable-number-separator":    ruleError(),
		"toml/precision-of-fractional-seconds":   ruleError(),
		"toml/precision-of-integer":              ruleError(),
		"toml/tables-order":                      ruleError(),
		"toml/vue-custom-block/no-parsing-error": ruleError(),
	}
	if style != nil {
		indent := style.WithDefaults().Indent
		if indent == "tab" {
			indent = 2
		}
		rules["toml/array-bracket-newline"] = ruleError()
		rules["toml/array-bracket-spacing"] = ruleError()
		rules["toml/array-element-newline"] = ruleError()
		rules["toml/indent"] = ruleError(indent)
		rules["toml/inline-table-curly-spacing"] = ruleError()
		rules["toml/key-spacing"] = ruleError()
		rules["toml/padding-line-between-pairs"] = ruleError()
		rules["toml/padding-line-between-tables"] = ruleError()
		rules["toml/quoted-keys"] = ruleError()
		rules["toml/spaced-comment"] = ruleError()
		rules["toml/table-bracket-spacing"] = ruleError()
	}

	return []types.RuleFragment{
		{
			Name:    Name("toml", "setup"),
			Plugins: pluginNames,
		},
		{
			Name:  Name("toml", "rules"),
			Files: orDefault(opts.Files, []string{GlobTOML}),
			LanguageOptions: &types.LanguageOptions{
				Parser: parserFor(plugins.TOML),
			},
			Rules: withOverrides(rules, opts.Overrides),
		},
	}, nil
}
